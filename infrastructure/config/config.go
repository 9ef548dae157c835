package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion        string
	CoreTable        string // gg_core: profiles, goals, general chat, reactions, XP, badges
	GuildTable       string // gg_guild: guild room chat
	ConnectionsTable string // live WebSocket connections
	EventBusName     string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// WebSocket configuration
	WebSocketEndpoint string

	// Message pagination
	MessagePageDefault int32
	MessagePageMax     int32

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		CoreTable:        getEnv("CORE_TABLE_NAME", "gg_core"),
		GuildTable:       getEnv("GUILD_TABLE_NAME", "gg_guild"),
		ConnectionsTable: getEnv("CONNECTIONS_TABLE_NAME", "gg_connections"),
		EventBusName:     getEnv("EVENT_BUS_NAME", "goalsguild-events"),

		// Lambda configuration
		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		// WebSocket configuration
		WebSocketEndpoint: getEnv("WEBSOCKET_ENDPOINT", ""),

		// Message pagination: default page size and the server-side
		// ceiling callers cannot exceed
		MessagePageDefault: int32(getEnvInt("MESSAGE_PAGE_DEFAULT", 50)),
		MessagePageMax:     int32(getEnvInt("MESSAGE_PAGE_MAX", 100)),

		// Authentication
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "goalsguild"),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.CoreTable == "" {
			return fmt.Errorf("CORE_TABLE_NAME is required")
		}
		if c.GuildTable == "" {
			return fmt.Errorf("GUILD_TABLE_NAME is required")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required")
		}
	}
	if c.MessagePageDefault <= 0 || c.MessagePageMax < c.MessagePageDefault {
		return fmt.Errorf("invalid message pagination bounds: default=%d max=%d",
			c.MessagePageDefault, c.MessagePageMax)
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
