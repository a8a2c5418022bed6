package connector

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// tokenExpirySkew is subtracted from the gateway expiry so a cached token is never used at its last second
const tokenExpirySkew = 30 * time.Second

// RedisTokenKey is the key the gateway token is cached under
const RedisTokenKey = "school-portal:payment-gateway:token"

type memoryTokenStore struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryTokenStore returns a TokenStore local to the process
func NewMemoryTokenStore() payments.TokenStore {
	return &memoryTokenStore{now: time.Now}
}

func (s *memoryTokenStore) Get(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || !s.now().Before(s.expiresAt.Add(-tokenExpirySkew)) {
		return "", false, nil
	}
	return s.token, true, nil
}

func (s *memoryTokenStore) Set(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = expiresAt
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiresAt = time.Time{}
	return nil
}

type redisTokenStore struct {
	client *redis.Client
	key    string
}

// NewRedisTokenStore returns a TokenStore shared by every replica connected to client
func NewRedisTokenStore(client *redis.Client) payments.TokenStore {
	return &redisTokenStore{client: client, key: RedisTokenKey}
}

func (s *redisTokenStore) Get(ctx context.Context) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached gateway token: %w", err)
	}
	return token, true, nil
}

func (s *redisTokenStore) Set(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt) - tokenExpirySkew
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache gateway token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to drop cached gateway token: %w", err)
	}
	return nil
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, settings *config.RedisSettings) (*redis.Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
