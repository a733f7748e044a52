package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores the dispatch service settings.
type Config struct {
	Port        int
	Timezone    string
	Location    *time.Location
	Log         Log
	DB          DB
	Kafka       Kafka
	SessionTTL  time.Duration
	Propagation Propagation
}

// Log selects the logging backend.
type Log struct {
	Backend string
	Level   string
}

// DB holds Postgres mirror settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// Enabled reports whether a mirror database is configured.
func (db DB) Enabled() bool { return db.Host != "" }

// DSN builds a postgres connection URL.
func (db DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Pass),
		Host:     db.Host + ":" + db.Port,
		Path:     "/" + db.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Kafka holds assignment event producer settings. No brokers disables it.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Propagation tunes delivery of store changes to the mirror and Kafka.
type Propagation struct {
	Buffer  int
	Timeout time.Duration
	Retry   Retry
}

// Retry describes sink retries.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RegisterFlags declares the command line overrides on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP("port", "p", defaultPort, "port to listen on")
	fs.String("timezone", defaultTimezone, "IANA zone that defines calendar days")
	fs.String("log-backend", defaultLogBackend, "log backend: slog or zap")
	fs.String("log-level", defaultLogLevel, "minimum log level")
	fs.StringSlice("kafka-brokers", nil, "kafka brokers for assignment events")
	fs.String("kafka-topic", defaultKafkaTopic, "kafka topic for assignment events")
	fs.Duration("session-ttl", defaultSessionTTL, "idle timeout of workflow sessions")
	fs.Int("propagation-buffer", defaultPropagation.Buffer, "queued changes before new ones are dropped")
	fs.Duration("propagation-timeout", defaultPropagation.Timeout, "timeout of a single sink call")
}

// Load reads configuration in order: .env (if present) → environment → flags.
// Only flags registered on fs and set explicitly override the environment;
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:     defaultPort,
		Timezone: defaultTimezone,
		Log: Log{
			Backend: defaultLogBackend,
			Level:   defaultLogLevel,
		},
		DB:          defaultDB,
		Kafka:       Kafka{Topic: defaultKafkaTopic},
		SessionTTL:  defaultSessionTTL,
		Propagation: defaultPropagation,
	}

	if err := fromEnv(cfg); err != nil {
		return nil, err
	}
	if err := fromFlags(cfg, fs); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.Timezone = envString("TIMEZONE", cfg.Timezone)
	cfg.Log.Backend = envString("LOG_BACKEND", cfg.Log.Backend)
	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.Topic = envString("KAFKA_TOPIC", cfg.Kafka.Topic)

	if cfg.SessionTTL, err = envDuration("SESSION_TTL", cfg.SessionTTL); err != nil {
		return err
	}
	if cfg.Propagation.Buffer, err = envInt("PROPAGATION_BUFFER", cfg.Propagation.Buffer); err != nil {
		return err
	}
	if cfg.Propagation.Timeout, err = envDuration("PROPAGATION_TIMEOUT", cfg.Propagation.Timeout); err != nil {
		return err
	}
	if cfg.Propagation.Retry.MaxAttempts, err = envInt("PROPAGATION_RETRY_ATTEMPTS", cfg.Propagation.Retry.MaxAttempts); err != nil {
		return err
	}
	return nil
}

func fromFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	var err error
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed && err == nil
	}

	if changed("port") {
		cfg.Port, err = fs.GetInt("port")
	}
	if changed("timezone") {
		cfg.Timezone, err = fs.GetString("timezone")
	}
	if changed("log-backend") {
		cfg.Log.Backend, err = fs.GetString("log-backend")
	}
	if changed("log-level") {
		cfg.Log.Level, err = fs.GetString("log-level")
	}
	if changed("kafka-brokers") {
		cfg.Kafka.Brokers, err = fs.GetStringSlice("kafka-brokers")
	}
	if changed("kafka-topic") {
		cfg.Kafka.Topic, err = fs.GetString("kafka-topic")
	}
	if changed("session-ttl") {
		cfg.SessionTTL, err = fs.GetDuration("session-ttl")
	}
	if changed("propagation-buffer") {
		cfg.Propagation.Buffer, err = fs.GetInt("propagation-buffer")
	}
	if changed("propagation-timeout") {
		cfg.Propagation.Timeout, err = fs.GetDuration("propagation-timeout")
	}
	return err
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc
	if c.Propagation.Buffer <= 0 {
		return fmt.Errorf("invalid propagation buffer: %d", c.Propagation.Buffer)
	}
	if c.Propagation.Timeout < 0 || c.SessionTTL < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
