package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-storefront/internal/pkg/logger"
	"time"

	_redis "github.com/redis/go-redis/v9"
)

func Setup(ctx context.Context, config *Config) (*Client, error) {
	clientCtx, cancel := context.WithCancel(ctx)

	r := &Client{
		cancel: cancel,
		ctx:    clientCtx,
		config: config,
	}

	if err := r.connect(); err != nil {
		cancel()
		logger.Error.Println(err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	go r.watch()

	return r, nil
}

func (r *Client) connect() error {
	r.Client = _redis.NewClient(&_redis.Options{
		Addr:     fmt.Sprintf("%s:%d", r.config.Host, r.config.Port),
		Username: r.config.Username,
		Password: r.config.Password,
		PoolSize: r.config.PoolSize,
	})

	if err := r.Client.Ping(r.ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	return nil
}

// watch pings the server every second and re-dials with a linear backoff
// once it stops answering. It exits with the client context.
func (r *Client) watch() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			logger.Info.Println("Redis watcher shutting down...")
			return
		case <-ticker.C:
			if err := r.Ping(); err == nil {
				continue
			} else {
				logger.Warning.Printf("Redis connection lost: %v. Attempting to reconnect...", err)
			}

			for attempt := 1; r.ctx.Err() == nil; attempt++ {
				old := r.Client
				if err := r.connect(); err == nil {
					_ = old.Close()
					logger.Info.Println("Reconnected to Redis.")
					break
				} else {
					logger.Warning.Printf("Redis reconnect attempt #%d failed: %v", attempt, err)
				}
				select {
				case <-r.ctx.Done():
				case <-time.After(time.Duration(attempt) * time.Second):
				}
			}
		}
	}
}

// Close stops the watcher and closes the connection pool.
func (r *Client) Close() error {
	r.cancel()
	return r.Client.Close()
}

// Ping reports whether the server is reachable.
func (r *Client) Ping() error {
	return r.Client.Ping(r.ctx).Err()
}

// Set stores value under key. Strings and byte slices are stored verbatim,
// anything else as JSON.
func (r *Client) Set(key string, value any, expiration time.Duration) error {
	var data any
	switch v := value.(type) {
	case string, []byte:
		data = v
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		data = encoded
	}

	if err := r.Client.Set(r.ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Get returns the value of key, or "" when it does not exist.
func (r *Client) Get(key string) (string, error) {
	result, err := r.Client.Get(r.ctx, key).Result()
	if err != nil {
		if errors.Is(err, NilType) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return result, nil
}

func (r *Client) Del(key string) error {
	if err := r.Client.Del(r.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (r *Client) Expire(key string, expiration time.Duration) error {
	if err := r.Client.Expire(r.ctx, key, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set expiration on key %s: %w", key, err)
	}
	return nil
}
