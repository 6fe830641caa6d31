package database

import (
	"context"
	"log"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionPool manages the database connection pool
type ConnectionPool struct {
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConnectionPool creates a new database connection pool
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	pool := &ConnectionPool{
		DB:              db,
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	if err := pool.ConfigurePool(); err != nil {
		return nil, err
	}

	return pool, nil
}

// ConfigurePool applies the pool parameters and pings the database
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	log.Printf("Database connection pool configured: max idle=%d, max open=%d", p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// GetDB returns the underlying gorm handle
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}

// Stats returns connection pool statistics
func (p *ConnectionPool) Stats() (map[string]interface{}, error) {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
	}, nil
}
