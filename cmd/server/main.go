// @title           Fradomos Local API
// @version         1.0
// @description     Home automation backend with home, room, device and access management plus a websocket to MQTT command relay

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/endri-fradomos/local-api/internal/app/routes"
	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/domain/services/container"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"
	Logger "github.com/endri-fradomos/local-api/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// Environment variables may already be set another way
		Logger.Warning("could not load .env file: %v", err)
	} else {
		Logger.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("could not create database connection pool: %v", err)
		os.Exit(1)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "none":
		Logger.Info("migration disabled, using existing schema as-is")
	default:
		// AutoMigrate only adds new columns and tables
		Logger.Info("running schema migration")
		if err := autoMigrate(db); err != nil {
			Logger.Error("schema migration failed: %v", err)
			os.Exit(1)
		}
	}

	ensureAdminExists(db, cfg)

	// The container is built here rather than inside the router so the
	// broker connection can be closed on shutdown.
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	r := routes.SetupRouterWithContainer(serviceContainer, cfg)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	Logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Logger.Error("forced shutdown: %v", err)
	}
	serviceContainer.Close()
}

// autoMigrate migrates all models, adding new columns and tables only
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Home{},
		&models.HomeMember{},
		&models.HomeInvite{},
		&models.Room{},
		&models.Device{},
		&models.AccessPermission{},
	)
}

// ensureAdminExists seeds a default admin account on an empty users table
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			Logger.Error("could not hash default admin password: %v", err)
			os.Exit(1)
		}

		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hashedPassword),
			FirstName:    "System",
			LastName:     "Admin",
			Email:        "admin@fradomos.al",
			Role:         "admin",
		}

		if err := db.Create(&admin).Error; err != nil {
			Logger.Error("could not create default admin: %v", err)
			os.Exit(1)
		}

		Logger.Info("created default admin account")
	}
}

// printSystemInfo logs pool and runtime stats at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	Logger.Info("CPU cores: %d", runtime.NumCPU())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("memory: Alloc=%v MiB, Sys=%v MiB", m.Alloc/1024/1024, m.Sys/1024/1024)
}
