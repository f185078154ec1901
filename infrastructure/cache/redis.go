// Package cache guarda os agregados calculados no Redis
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultTTL = 15 * time.Minute

var _ intelligence.AggregateCache = (*AggregateCache)(nil)

// redisClient é o subconjunto do *redis.Client usado pelo cache
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type AggregateCache struct {
	client redisClient
	ttl    time.Duration
}

func NewAggregateCache(client redisClient, ttl time.Duration) *AggregateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &AggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retorna found=false quando a chave não existe
func (c *AggregateCache) Get(ctx context.Context, key string) (*domain.AggregateBundle, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao ler agregados do cache: %w", err)
	}

	var bundle domain.AggregateBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar agregados do cache: %w", err)
	}

	return &bundle, true, nil
}

func (c *AggregateCache) Set(ctx context.Context, key string, bundle *domain.AggregateBundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("erro ao codificar agregados: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar agregados no cache: %w", err)
	}

	return nil
}

// HealthCheck verifica a conexão com o Redis
func (c *AggregateCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("falha na conexão com o redis: %w", err)
	}
	return nil
}
