package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define las operaciones de contador con expiración que usa el limitador de peticiones.
// Los datos de dominio nunca se guardan en caché.
type Client interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Close() error
}

// RedisClient es la implementación de Client sobre Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient conecta con Redis y verifica la conexión con PING.
func NewRedisClient(addr string, timeout time.Duration) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("no fue posible conectar con Redis en %s: %w", addr, err)
	}

	return &RedisClient{rdb: rdb}, nil
}

// Incr incrementa el contador de la clave y devuelve el nuevo valor.
func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

// Expire fija el tiempo de vida de la clave.
func (c *RedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.rdb.Expire(ctx, key, expiration).Err()
}

// TTL devuelve el tiempo de vida restante de la clave.
func (c *RedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.TTL(ctx, key).Result()
}

// Close libera las conexiones del cliente.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
