package app

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/testdrivenio/flask-spa-auth/internal/config"
	"github.com/testdrivenio/flask-spa-auth/internal/logger"
)

type Infra struct {
	Redis *goredis.Client // nil unless the redis session backend is selected
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, func() error, error) {
	if cfg.SessionBackend != config.BackendRedis {
		return &Infra{}, nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, nil, err
	}

	logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})

	return &Infra{Redis: client}, client.Close, nil
}
