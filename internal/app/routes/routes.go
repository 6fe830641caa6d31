package routes

import (
	"time"

	_ "github.com/endri-fradomos/local-api/docs"
	"github.com/endri-fradomos/local-api/internal/app/controllers"
	"github.com/endri-fradomos/local-api/internal/app/middleware"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	return SetupRouterWithContainer(serviceContainer, cfg)
}

// SetupRouterWithContainer wires routes onto an existing container. The
// caller owns the container lifecycle, which keeps the broker connection
// closable on shutdown.
func SetupRouterWithContainer(serviceContainer *container.ServiceContainer, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS, the API serves browsers on the local network
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)

	// Command relay websocket, authenticated by token at upgrade time
	r.GET("/ws", controllers.HandleRelayFunc(container))
}

// registerPublicRoutes registers routes reachable without a token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandlePingFunc(container))
	api.GET("/health", controllers.HandlePingFunc(container)) // Docker health check alias

	// Authentication, tighter limit on the credential endpoints
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleJWTFunc(container, "register"))
}

// registerAuthenticatedRoutes registers routes behind JWT authentication
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 30 requests per second per IP, bursts of 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// User routes
	userGroup := auth.Group("/users")
	userGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleUserFunc(container, "getUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// Home routes
	homeGroup := auth.Group("/homes")
	{
		homeGroup.GET("", controllers.HandleHomeFunc(container, "getHomes"))
		homeGroup.GET("/mine", controllers.HandleHomeFunc(container, "getMyHomes"))
		homeGroup.GET("/:id", controllers.HandleHomeFunc(container, "getHome"))
		homeGroup.POST("", controllers.HandleHomeFunc(container, "createHome"))
		homeGroup.PUT("/:id", controllers.HandleHomeFunc(container, "updateHome"))
		homeGroup.DELETE("/:id", controllers.HandleHomeFunc(container, "deleteHome"))
	}

	// Membership routes
	memberGroup := auth.Group("/home-members")
	memberGroup.GET("", controllers.HandleHomeMemberFunc(container, "getMembers"))
	memberGroup.GET("/home/:homeId", controllers.HandleHomeMemberFunc(container, "getHomeMembers"))
	memberGroup.POST("", controllers.HandleHomeMemberFunc(container, "addMember"))
	memberGroup.PUT("/:homeId/:userId", controllers.HandleHomeMemberFunc(container, "updateMemberRole"))
	memberGroup.DELETE("/:homeId/:userId", controllers.HandleHomeMemberFunc(container, "removeMember"))

	// Invite routes
	inviteGroup := auth.Group("/home-invites")
	inviteGroup.GET("", controllers.HandleHomeInviteFunc(container, "getInvites"))
	inviteGroup.GET("/mine", controllers.HandleHomeInviteFunc(container, "getMyInvites"))
	inviteGroup.POST("", controllers.HandleHomeInviteFunc(container, "createInvite"))
	inviteGroup.PUT("/:id", controllers.HandleHomeInviteFunc(container, "updateInviteStatus"))
	inviteGroup.DELETE("/:id", controllers.HandleHomeInviteFunc(container, "deleteInvite"))

	// Room routes
	roomGroup := auth.Group("/rooms")
	{
		roomGroup.GET("", controllers.HandleRoomFunc(container, "getRooms"))
		roomGroup.GET("/home/:homeId", controllers.HandleRoomFunc(container, "getHomeRooms"))
		roomGroup.GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
		roomGroup.POST("", controllers.HandleRoomFunc(container, "createRoom"))
		roomGroup.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
		roomGroup.DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))
	}

	// Device routes
	deviceGroup := auth.Group("/devices")
	{
		deviceGroup.GET("", controllers.HandleDeviceFunc(container, "getDevices"))
		deviceGroup.GET("/room/:roomId", controllers.HandleDeviceFunc(container, "getRoomDevices"))
		deviceGroup.GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
		deviceGroup.POST("", controllers.HandleDeviceFunc(container, "createDevice"))
		deviceGroup.PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
		deviceGroup.DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))
	}

	// Access permission routes
	permGroup := auth.Group("/access-permissions")
	permGroup.GET("", controllers.HandleAccessPermissionFunc(container, "getPermissions"))
	permGroup.GET("/filter", controllers.HandleAccessPermissionFunc(container, "getVisibleRooms"))
	permGroup.POST("", controllers.HandleAccessPermissionFunc(container, "createPermission"))
	permGroup.PUT("/:id", controllers.HandleAccessPermissionFunc(container, "updatePermission"))
	permGroup.DELETE("/:id", controllers.HandleAccessPermissionFunc(container, "deletePermission"))
}
