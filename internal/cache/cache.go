package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache es una capa de lectura opcional para catálogos que casi no
// cambian (especialidades, top doctores). Sin redis configurado todas
// las operaciones son no-op y el caller va directo al backend.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func New(addr string, ttl time.Duration, log *zap.Logger) *Cache {
	c := &Cache{ttl: ttl, log: log}
	if addr == "" {
		return c
	}
	c.rdb = redis.NewClient(&redis.Options{Addr: addr})
	return c
}

// Get deserializa la entrada en out y devuelve true si hubo hit.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// entrada podrida: fuera y seguimos al backend
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

// Set guarda best-effort; un fallo de cache nunca rompe el flujo.
func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Debug("cache set falló", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
