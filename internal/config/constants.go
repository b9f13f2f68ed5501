package config

import "time"

// Service defaults
const (
	DefaultServiceName = "roots-bot"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "text"
	DefaultPort        = "8080"
)

// Database defaults
const (
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "rootsbot"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Feature defaults
const (
	DefaultMatchMaxAttempts      = 200
	DefaultReminderInterval      = 24 * time.Hour
	DefaultWeatherUpdateInterval = 24 * time.Hour
	DefaultBlightTickInterval    = 24 * time.Hour
	DefaultWorkerCount           = 4
	DefaultWorkerQueueSize       = 64
)
