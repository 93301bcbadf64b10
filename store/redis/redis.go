package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/bridge-orchestrator/store"
)

const (
	scanCount = 100
)

type RedisStore struct {
	pool      *redis.Pool
	namespace string
}

func timeoutDialOptions(db int) []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
		redis.DialDatabase(db),
	}
}

// NewRedisStore creates a store whose keys are prefixed with namespace
func NewRedisStore(addr string, db int, namespace string) *RedisStore {
	return &RedisStore{
		pool: &redis.Pool{
			MaxIdle:     5,
			IdleTimeout: 4 * time.Minute,
			Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", addr, timeoutDialOptions(db)...) },
			TestOnBorrow: func(c redis.Conn, t time.Time) error {
				if time.Since(t) < time.Minute {
					return nil
				}
				_, err := c.Do("PING")
				return err
			},
		},
		namespace: namespace,
	}
}

func (s *RedisStore) key(k string) string {
	if s.namespace == "" {
		return k
	}
	return s.namespace + ":" + k
}

func (s *RedisStore) conn(ctx context.Context) (redis.Conn, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis connection: %w", err)
	}
	return conn, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	v, err := redis.Bytes(conn.Do("GET", s.key(key)))
	if errors.Is(err, redis.ErrNil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		log.Error().Msgf("error Redis get: %s", err)
		return nil, err
	}
	return v, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Do("SET", s.key(key), value)
	if err != nil {
		log.Error().Msgf("error Redis set: %s", err)
		return err
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Do("DEL", s.key(key))
	return err
}

func (s *RedisStore) List(ctx context.Context, prefix string) ([]store.Entry, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	keys := make([]string, 0)
	cursor := 0
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", s.key(prefix)+"*", "COUNT", scanCount))
		if err != nil {
			return nil, err
		}

		cursor, err = redis.Int(values[0], nil)
		if err != nil {
			return nil, err
		}
		batch, err := redis.Strings(values[1], nil)
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)

		if cursor == 0 {
			break
		}
	}

	sort.Strings(keys)
	entries := make([]store.Entry, 0, len(keys))
	for _, k := range keys {
		v, err := redis.Bytes(conn.Do("GET", k))
		if errors.Is(err, redis.ErrNil) {
			// deleted between SCAN and GET
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, store.Entry{Key: k[len(s.key("")):], Value: v})
	}
	return entries, nil
}

func (s *RedisStore) Close() error {
	return s.pool.Close()
}
