package cache

import "time"

// MemoryConfig controls the in-process cache layer.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryConfig)

func WithMaxSize(size int) MemoryOption {
	return func(c *MemoryConfig) {
		if size > 0 {
			c.MaxSize = size
		}
	}
}

func WithCleanupInterval(interval time.Duration) MemoryOption {
	return func(c *MemoryConfig) {
		if interval > 0 {
			c.CleanupInterval = interval
		}
	}
}

// RedisConfig controls the remote cache layer.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisConfig)

func WithAddress(host string, port int) RedisOption {
	return func(c *RedisConfig) {
		if host != "" {
			c.Host = host
		}
		if port > 0 {
			c.Port = port
		}
	}
}

func WithPassword(password string) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
	}
}

func WithDB(db int) RedisOption {
	return func(c *RedisConfig) {
		if db >= 0 {
			c.DB = db
		}
	}
}

func WithPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		c.Prefix = prefix
	}
}
