package constants

// Database pool settings.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes.
const (
	RedisKeyActivationToken = "activation:"
	RedisKeyResetToken      = "reset:"
	RedisKeyTokenBlacklist  = "blacklist:"
)

// Token lifetimes, in hours.
const (
	ActivationTokenTTLHours = 24
	ResetTokenTTLHours      = 2
)

// UntitledEvent is the title given to feed events with no summary.
const UntitledEvent = "Sin título"
