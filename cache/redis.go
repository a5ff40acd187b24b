package cache

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/gomodule/redigo/redis"
)

type RedisConfig struct {
	Address        string        `mapstructure:"address"`
	Database       int           `mapstructure:"database"`
	Password       string        `mapstructure:"password"`
	MaxIdle        int           `mapstructure:"maxIdleConnections"`
	IdleTimeout    time.Duration `mapstructure:"idleTimeout"`
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	QueryTimeout   time.Duration `mapstructure:"queryTimeout"`
}

func NewRedis(prefix string, cfg RedisConfig) BytesCache {
	if cfg.MaxIdle <= 0 {
		cfg.MaxIdle = 3
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 240 * time.Second
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 50 * time.Millisecond
	}

	dialOptions := []redis.DialOption{
		redis.DialDatabase(cfg.Database),
	}
	if cfg.Password != "" {
		dialOptions = append(dialOptions, redis.DialPassword(cfg.Password))
	}
	if cfg.ConnectTimeout > 0 {
		dialOptions = append(dialOptions, redis.DialConnectTimeout(cfg.ConnectTimeout))
	}

	return &RedisCache{
		prefix:       prefix,
		queryTimeout: cfg.QueryTimeout,
		pool: &redis.Pool{
			MaxIdle:     cfg.MaxIdle,
			IdleTimeout: cfg.IdleTimeout,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", cfg.Address, dialOptions...)
			},
		},
	}
}

type RedisCache struct {
	prefix       string
	pool         *redis.Pool
	queryTimeout time.Duration
	timeouts     uint64
}

func (r *RedisCache) Get(k string) ([]byte, error) {
	hk := hashKey(r.prefix, k)

	conn := r.pool.Get()
	defer conn.Close()

	v, err := redis.Bytes(redis.DoWithTimeout(conn, r.queryTimeout, "GET", hk))
	if err != nil {
		if err == redis.ErrNil {
			return nil, ErrNotFound
		}
		if e, ok := err.(net.Error); ok && e.Timeout() {
			atomic.AddUint64(&r.timeouts, 1)
			return nil, ErrTimeout
		}
		return nil, err
	}

	return v, nil
}

func (r *RedisCache) Set(k string, v []byte, expire int32) {
	hk := hashKey(r.prefix, k)
	go func() {
		conn := r.pool.Get()
		defer conn.Close()
		_, _ = redis.DoWithTimeout(conn, r.queryTimeout, "SETEX", hk, expire, v)
	}()
}

func (r *RedisCache) Timeouts() uint64 {
	return atomic.LoadUint64(&r.timeouts)
}
