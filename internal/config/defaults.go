package config

import "time"

const (
	defaultPort       = 8080
	defaultTimezone   = "Local"
	defaultLogBackend = "slog"
	defaultLogLevel   = "info"
	defaultKafkaTopic = "assignment-events"
	defaultSessionTTL = 30 * time.Minute
)

var defaultDB = DB{
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch",
}

var defaultPropagation = Propagation{
	Buffer:  256,
	Timeout: 3 * time.Second,
	Retry: Retry{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    time.Second,
	},
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings. Host is empty, which
// leaves the Postgres mirror disabled.
func DefaultDB() DB {
	return defaultDB
}

// DefaultPropagation returns the default propagation settings.
func DefaultPropagation() Propagation {
	return defaultPropagation
}
