package config

import (
	"fmt"
	"strings"
)

// SessionStoreKind selects where gateway sessions are persisted.
type SessionStoreKind string

const (
	// SessionStoreRedis keeps sessions in Redis (TTL-managed, preferred).
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStorePostgres keeps sessions in Postgres.
	SessionStorePostgres SessionStoreKind = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (k *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "postgres":
		*k = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: redis, postgres)", v)
	}
}

// SessionStoreConfig selects the session store backend.
type SessionStoreConfig struct {
	Kind SessionStoreKind `env:"SESSION_STORE" envDefault:"redis"`
}

// RedisConfig contains Redis configuration for the session store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// DBConfig contains PostgreSQL configuration for the session store.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"chefbazaar"`
	Password string `env:"PASSWORD" envDefault:"chefbazaar"`
	Name     string `env:"NAME"     envDefault:"chefbazaar"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}
