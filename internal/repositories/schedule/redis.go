package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Keys for Redis
	fireTimesKey = "rewards:schedule"
	jobsKey      = "rewards:schedule:jobs"
)

// Config holds configuration for the Redis schedule repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed schedule repository
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

// SaveJob writes the job body and its fire time together
func (r *redisRepository) SaveJob(ctx context.Context, input *SaveJobInput) error {
	if input == nil || input.Job == nil {
		return errors.New("input and job cannot be nil")
	}
	job := input.Job
	if job.UserID == "" || job.RoleID == "" {
		return fmt.Errorf("%w: user and role ID cannot be empty", models.ErrInvalidInput)
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, jobsKey, job.Key(), jobJSON)
		pipe.ZAdd(ctx, fireTimesKey, redis.Z{Score: float64(job.FireAt.UnixMilli()), Member: job.Key()})
		return nil
	})
	if err != nil {
		return models.Unavailable("save job", err)
	}

	return nil
}

// DeleteJob removes the job body and its fire time
func (r *redisRepository) DeleteJob(ctx context.Context, input *DeleteJobInput) error {
	if input == nil || input.UserID == "" || input.RoleID == "" {
		return fmt.Errorf("%w: user and role ID cannot be empty", models.ErrInvalidInput)
	}

	key := (&models.RoleExpiration{UserID: input.UserID, RoleID: input.RoleID}).Key()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, jobsKey, key)
		pipe.ZRem(ctx, fireTimesKey, key)
		return nil
	})
	if err != nil {
		return models.Unavailable("delete job", err)
	}

	return nil
}

// ListJobs reads jobs in fire time order
func (r *redisRepository) ListJobs(ctx context.Context, input *ListJobsInput) (*ListJobsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	upper := "+inf"
	if !input.DueBefore.IsZero() {
		upper = strconv.FormatInt(input.DueBefore.UnixMilli(), 10)
	}

	keys, err := r.client.ZRangeByScore(ctx, fireTimesKey, &redis.ZRangeBy{Min: "-inf", Max: upper}).Result()
	if err != nil {
		return nil, models.Unavailable("list jobs", err)
	}
	if len(keys) == 0 {
		return &ListJobsOutput{Jobs: []*models.RoleExpiration{}}, nil
	}

	raw, err := r.client.HMGet(ctx, jobsKey, keys...).Result()
	if err != nil {
		return nil, models.Unavailable("get jobs", err)
	}

	jobs := make([]*models.RoleExpiration, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			// fire time without a body
			continue
		}
		var job models.RoleExpiration
		if err := json.Unmarshal([]byte(s), &job); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job %s: %w", keys[i], err)
		}
		jobs = append(jobs, &job)
	}

	return &ListJobsOutput{Jobs: jobs}, nil
}
