package constants

import "time"

// Server defaults
const (
	DefaultServerPort     = 7070
	DefaultRequestTimeout = 30 * time.Second
	ServerShutdownTimeout = 10 * time.Second
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key/channel prefixes
const (
	RedisKeyEventCache           = "timegrid:event:"
	RedisChannelAvailabilityFeed = "timegrid:availability:feed:"
	EventCacheTTL                = 5 * time.Minute
)

// Background tasks
const (
	TaskEventCleanup          = "event:cleanup:expired"
	EventCleanupCron          = "0 3 * * *"
	DefaultEventRetentionDays = 30
)

// ID generation
const (
	EventIDLength = 12
)
