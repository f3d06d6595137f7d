package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	documentKeyPrefix = "rewards:config:"
)

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetDocument reads and decodes a document
func (r *redisRepository) GetDocument(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error) {
	if input == nil || input.Name == "" {
		return nil, fmt.Errorf("%w: document name cannot be empty", models.ErrInvalidInput)
	}
	if input.Target == nil {
		return nil, fmt.Errorf("%w: target cannot be nil", models.ErrInvalidInput)
	}

	raw, err := r.client.Get(ctx, documentKeyPrefix+input.Name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetDocumentOutput{Found: false}, nil
		}
		return nil, models.Unavailable("get "+input.Name, err)
	}

	if err := json.Unmarshal(raw, input.Target); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", input.Name, err)
	}

	return &GetDocumentOutput{Found: true}, nil
}

// SaveDocument encodes and writes a document
func (r *redisRepository) SaveDocument(ctx context.Context, input *SaveDocumentInput) error {
	if input == nil || input.Name == "" {
		return fmt.Errorf("%w: document name cannot be empty", models.ErrInvalidInput)
	}

	raw, err := json.Marshal(input.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", input.Name, err)
	}

	if err := r.client.Set(ctx, documentKeyPrefix+input.Name, raw, 0).Err(); err != nil {
		return models.Unavailable("save "+input.Name, err)
	}

	return nil
}

// DeleteDocument removes a document
func (r *redisRepository) DeleteDocument(ctx context.Context, input *DeleteDocumentInput) error {
	if input == nil || input.Name == "" {
		return fmt.Errorf("%w: document name cannot be empty", models.ErrInvalidInput)
	}

	if err := r.client.Del(ctx, documentKeyPrefix+input.Name).Err(); err != nil {
		return models.Unavailable("delete "+input.Name, err)
	}

	return nil
}
