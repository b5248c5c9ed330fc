// Package redisstore persists the cart blob under one redis key. It is the
// shared-origin backend: every storefront process of the same origin reads
// and writes the same key, so two of them can race read-modify-write and the
// last writer wins.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aritro-Git/AIzMarketplace/internal/cart/app"
)

// Config builds the redis client from the environment.
type Config struct {
	URL          string `split_words:"true" required:"true"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

func (c *Config) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(c.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(c.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(c.DialTimeout) * time.Second

	client := redis.NewClient(opts)

	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		return nil, cmd.Err()
	}
	return client, nil
}

const defaultKey = "aiz:cart"

type Storage struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Storage {
	if key == "" {
		key = defaultKey
	}
	return &Storage{client: client, key: key}
}

func (s *Storage) Read(ctx context.Context) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, app.ErrNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (s *Storage) Write(ctx context.Context, blob []byte) error {
	return s.client.Set(ctx, s.key, blob, 0).Err()
}
