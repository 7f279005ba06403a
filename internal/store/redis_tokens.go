package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	revokedTokenPrefix = "auth:revoked:"
	oneTimeTokenPrefix = "auth:token:"
)

// redisTokenStore is the Redis-backed implementation of [TokenStore].
// Every key carries a TTL, so expired entries vanish on their own.
type redisTokenStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to Redis and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisTokenStore constructs a [TokenStore] on top of client.
func NewRedisTokenStore(client *redis.Client, logger *logger.Logger) TokenStore {
	return &redisTokenStore{
		client: client,
		logger: logger,
	}
}

// RevokeToken marks the token ID as revoked until it would expire anyway.
func (s *redisTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisTokenStore.RevokeToken").Msg("failed to revoke token")
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether the token ID was revoked.
func (s *redisTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// SaveOneTimeToken stores token for purpose, owned by userID.
func (s *redisTokenStore) SaveOneTimeToken(ctx context.Context, purpose, token string, userID int64, ttl time.Duration) error {
	if err := s.client.Set(ctx, oneTimeKey(purpose, token), userID, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisTokenStore.SaveOneTimeToken").Str("purpose", purpose).Msg("failed to save token")
		return fmt.Errorf("save one-time token: %w", err)
	}
	return nil
}

// ConsumeOneTimeToken atomically reads and deletes the token.
func (s *redisTokenStore) ConsumeOneTimeToken(ctx context.Context, purpose, token string) (int64, error) {
	value, err := s.client.GetDel(ctx, oneTimeKey(purpose, token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("consume one-time token: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("consume one-time token: %w", err)
	}
	return userID, nil
}

func oneTimeKey(purpose, token string) string {
	return oneTimeTokenPrefix + purpose + ":" + token
}
