package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires all services together
type ServiceContainer struct {
	db           *gorm.DB
	config       *config.Config
	redis        *redis.Client
	capabilities database.SchemaCapabilities

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	mailService  services.InterfaceMailService

	// Broker
	mqttClientService services.InterfaceMQTTClientService

	// Business services
	userService       services.InterfaceUserService
	homeService       services.InterfaceHomeService
	memberService     services.InterfaceHomeMemberService
	inviteService     services.InterfaceHomeInviteService
	roomService       services.InterfaceRoomService
	deviceService     services.InterfaceDeviceService
	permissionService services.InterfaceAccessPermissionService
	authzService      services.InterfaceAuthorizationService
	relayService      services.InterfaceRelayService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis ping failed: %v, continuing without Redis cache", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Probe the optional relations once; the resolver and the guarded write
	// paths consult this snapshot instead of rediscovering missing tables
	// per request.
	c.capabilities = database.ProbeCapabilities(c.db)
	log.Printf("Schema capabilities: members=%v invites=%v permissions=%v",
		c.capabilities.HomeMembers, c.capabilities.HomeInvites, c.capabilities.AccessPermissions)

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)
	c.mailService = services.NewMailService(c.config)

	// Broker connection, process wide
	c.mqttClientService = services.NewMQTTClientService(c.config)
	if err := c.mqttClientService.Connect(); err != nil {
		log.Printf("MQTT connection failed: %v", err)
	}

	// Business services
	c.userService = services.NewUserService(c.db, c.config)
	c.homeService = services.NewHomeService(c.db, c.config)
	c.memberService = services.NewHomeMemberService(c.db, c.config, c.capabilities)
	c.inviteService = services.NewHomeInviteService(c.db, c.config, c.capabilities, c.memberService)
	c.roomService = services.NewRoomService(c.db, c.config)
	c.deviceService = services.NewDeviceService(c.db, c.config)
	c.permissionService = services.NewAccessPermissionService(c.db, c.config, c.capabilities)
	c.authzService = services.NewAuthorizationService(c.db, c.capabilities)
	c.relayService = services.NewRelayService(c.config, c.mqttClientService, c.authzService, c.roomService, c.redisService)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mail":
		return c.mailService
	case "mqtt":
		return c.mqttClientService
	case "user":
		return c.userService
	case "home":
		return c.homeService
	case "member":
		return c.memberService
	case "invite":
		return c.inviteService
	case "room":
		return c.roomService
	case "device":
		return c.deviceService
	case "permission":
		return c.permissionService
	case "authz":
		return c.authzService
	case "relay":
		return c.relayService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Capabilities returns the startup schema capability snapshot
func (c *ServiceContainer) Capabilities() database.SchemaCapabilities {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capabilities
}

// Close tears down process-wide resources
func (c *ServiceContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mqttClientService != nil {
		c.mqttClientService.Disconnect()
	}
}
