package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
)

// NewClient conecta ao redis configurado. Retorna nil, nil quando REDIS_ADDR está vazio.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		logrus.Info("REDIS_ADDR não configurado, trava distribuída desabilitada")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis em %s: %w", cfg.Addr, err)
	}

	logrus.WithField("addr", cfg.Addr).Info("Conectado ao redis")

	return client, nil
}
