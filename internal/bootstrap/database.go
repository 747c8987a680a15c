package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/SowvikSuvo/chefbazaar-gateway/config"
	postgresadapter "github.com/SowvikSuvo/chefbazaar-gateway/internal/adapters/postgres"
	redisadapter "github.com/SowvikSuvo/chefbazaar-gateway/internal/adapters/redis"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// ConnectRedis establishes a connection to Redis.
//
//nolint:ireturn // redis.UniversalClient keeps sentinel/cluster support open.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr)
	}

	return client, nil
}

// ConnectPostgres establishes a pgx connection pool to PostgreSQL.
func ConnectPostgres(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	// Build DSN using url.URL to safely handle special characters in credentials
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()

	pool, err := pgxpool.New(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pingErr := pool.Ping(pingCtx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	if logger != nil {
		logger.Info("database connected", "host", cfg.Host, "port", cfg.Port, "database", cfg.Name)
	}

	return pool, nil
}

// SessionStoreResult bundles the store with its infrastructure cleanup.
type SessionStoreResult struct {
	Store ports.SessionStore
	Close func()
}

// BuildSessionStore connects the configured session backend. Redis is
// the default; Postgres is available where no Redis is deployed.
func BuildSessionStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*SessionStoreResult, error) {
	switch cfg.Sessions.Kind {
	case config.SessionStorePostgres:
		pool, err := ConnectPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := postgresadapter.NewSessionStore(pool)
		if schemaErr := store.EnsureSchema(ctx); schemaErr != nil {
			pool.Close()
			return nil, fmt.Errorf("ensure session schema: %w", schemaErr)
		}
		return &SessionStoreResult{Store: store, Close: pool.Close}, nil

	case config.SessionStoreRedis:
		fallthrough
	default:
		client, err := ConnectRedis(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store := redisadapter.NewSessionStoreWithPrefix(client, "session:")
		closeFn := func() {
			if closeErr := client.Close(); closeErr != nil && logger != nil {
				logger.Error("close redis failed", "error", closeErr)
			}
		}
		return &SessionStoreResult{Store: store, Close: closeFn}, nil
	}
}
