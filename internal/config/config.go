package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ServiceName string
	Version     string
	Environment string
	LogLevel    string
	LogFormat   string

	Port int // health/metrics HTTP server

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	DiscordToken          string
	DiscordAppID          string
	DiscordGuildID        string
	AnnounceChannelID     string
	ForceCommandUpdate    bool
	MatchMaxAttempts      int
	ReminderInterval      time.Duration
	WeatherUpdateInterval time.Duration
	BlightTickInterval    time.Duration
	WorkerCount           int
	WorkerQueueSize       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("SERVICE_VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),

		DBUser:     getEnv("DB_USER", DefaultDBUser),
		DBPassword: getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:     getEnv("DB_HOST", DefaultDBHost),
		DBPort:     getEnv("DB_PORT", DefaultDBPort),
		DBName:     getEnv("DB_NAME", DefaultDBName),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:       getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:     getEnv("DISCORD_GUILD_ID", ""),
		AnnounceChannelID:  getEnv("DISCORD_ANNOUNCE_CHANNEL_ID", ""),
		ForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),

		MatchMaxAttempts:      getEnvAsInt("SANTA_MATCH_MAX_ATTEMPTS", DefaultMatchMaxAttempts),
		ReminderInterval:      getEnvAsDuration("SANTA_REMINDER_INTERVAL", DefaultReminderInterval),
		WeatherUpdateInterval: getEnvAsDuration("WEATHER_UPDATE_INTERVAL", DefaultWeatherUpdateInterval),
		BlightTickInterval:    getEnvAsDuration("BLIGHT_TICK_INTERVAL", DefaultBlightTickInterval),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:       getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID environment variable must be set")
	}
	if cfg.MatchMaxAttempts < 1 {
		return nil, fmt.Errorf("SANTA_MATCH_MAX_ATTEMPTS must be at least 1, got %d", cfg.MatchMaxAttempts)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsBool retrieves an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
