package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	RecordLastCommand(topic, action string) error
	GetLastCommand(topic string) (string, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// RecordLastCommand stores the most recent action published on a topic
func (s *RedisService) RecordLastCommand(topic, action string) error {
	key := "relay:last:" + topic
	return s.Client.Set(s.Ctx, key, action, 24*time.Hour).Err()
}

// GetLastCommand returns the most recent action published on a topic
func (s *RedisService) GetLastCommand(topic string) (string, error) {
	key := "relay:last:" + topic
	return s.Client.Get(s.Ctx, key).Result()
}
