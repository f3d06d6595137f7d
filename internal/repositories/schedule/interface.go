package schedule

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rewardsbot/internal/repositories/schedule Repository

import (
	"context"
)

// Repository defines the interface for durable role expiration jobs
type Repository interface {
	// SaveJob stores a job, replacing any job with the same key
	SaveJob(ctx context.Context, input *SaveJobInput) error

	// DeleteJob removes a job by user and role
	DeleteJob(ctx context.Context, input *DeleteJobInput) error

	// ListJobs returns jobs ordered by fire time
	ListJobs(ctx context.Context, input *ListJobsInput) (*ListJobsOutput, error)
}
