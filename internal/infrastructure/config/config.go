package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // "auto" (default) or "none" (skip migrations)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// MQTT
	MQTTBrokerURL  string // broker address, e.g. tcp://broker.example.com:1883
	MQTTClientID   string
	MQTTUsername   string
	MQTTPassword   string
	MQTTQoS        int // quality of service (0, 1, 2)
	MQTTRetained   bool
	MQTTSSLEnabled bool
	MQTTCACertPath string // CA certificate path for SSL/TLS verification

	// Topic namespace for published device commands. LightTopicTemplate must
	// contain the {circuitId} and {index} placeholders.
	MQTTTopicNamespace string
	LightTopicTemplate string

	// JWT Authentication
	JWTSecretKey  string
	JWTExpiryHour int

	// SMTP (welcome emails)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Admin
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	namespace := getEnv("MQTT_TOPIC_NAMESPACE", "fradomos")

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "fradomos_db")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "3000")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// MQTT config
		MQTTBrokerURL:  getEnv("MQTT_URL", "tcp://192.168.100.232:1883"),
		MQTTClientID:   getEnv("MQTT_CLIENT_ID", "fradomos_server"),
		MQTTUsername:   getEnv("MQTT_USER", ""),
		MQTTPassword:   getEnv("MQTT_PASS", ""),
		MQTTQoS:        getEnvAsInt("MQTT_QOS", 1),
		MQTTRetained:   getEnvAsBool("MQTT_RETAINED", false),
		MQTTSSLEnabled: getEnvAsBool("MQTT_SSL_ENABLED", false),
		MQTTCACertPath: getEnv("MQTT_CA_CERT_PATH", ""),

		// Topic config
		MQTTTopicNamespace: namespace,
		LightTopicTemplate: getEnv("LIGHT_TOPIC_TEMPLATE", namespace+"/light/{circuitId}/{index}/set"),

		// JWT Config
		JWTSecretKey:  getEnv("JWT_SECRET", "fradomos-secret-key-change-in-production"),
		JWTExpiryHour: getEnvAsInt("JWT_EXPIRES_IN_HOURS", 24),

		// SMTP Config
		SMTPHost:     getEnv("SMTP_HOST", "smtp.zoho.eu"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUsername: getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASS", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "info@fradomos.al"),

		// Admin Config
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
