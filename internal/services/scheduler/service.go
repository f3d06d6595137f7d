package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/metrics"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	scheduleRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/schedule"
)

const fireTimeout = 30 * time.Second

// Config holds the dependencies of the scheduler
type Config struct {
	ScheduleRepo scheduleRepo.Repository
	Roles        RoleRemover
	Publisher    events.Publisher
	Clock        clock.Clock

	// Metrics may be nil
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

type service struct {
	repo      scheduleRepo.Repository
	roles     RoleRemover
	publisher events.Publisher
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// New creates a scheduler
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ScheduleRepo == nil {
		return nil, ErrNilScheduleRepo
	}
	if cfg.Roles == nil {
		return nil, ErrNilRoleRemover
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		repo:      cfg.ScheduleRepo,
		roles:     cfg.Roles,
		publisher: cfg.Publisher,
		clock:     cfg.Clock,
		metrics:   cfg.Metrics,
		logger:    logger,
		timers:    make(map[string]*time.Timer),
	}, nil
}

func (s *service) Schedule(ctx context.Context, input *ScheduleInput) error {
	if input == nil || input.Job == nil {
		return fmt.Errorf("%w: job cannot be nil", models.ErrInvalidInput)
	}
	job := input.Job

	if err := s.repo.SaveJob(ctx, &scheduleRepo.SaveJobInput{Job: job}); err != nil {
		return err
	}

	if !job.FireAt.After(s.clock.Now()) {
		s.fire(ctx, job)
		return nil
	}

	s.arm(job)
	s.logger.InfoContext(ctx, "Role expiration scheduled",
		slog.String("user_id", job.UserID),
		slog.String("role_id", job.RoleID),
		slog.Time("fire_at", job.FireAt))
	return nil
}

func (s *service) Cancel(ctx context.Context, input *CancelInput) error {
	if input == nil {
		return fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	key := (&models.RoleExpiration{UserID: input.UserID, RoleID: input.RoleID}).Key()

	s.mu.Lock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
	pending := len(s.timers)
	s.mu.Unlock()
	s.metrics.ScheduledJobs(pending)

	return s.repo.DeleteJob(ctx, &scheduleRepo.DeleteJobInput{
		UserID: input.UserID,
		RoleID: input.RoleID,
	})
}

func (s *service) Restore(ctx context.Context) (*RestoreOutput, error) {
	list, err := s.repo.ListJobs(ctx, &scheduleRepo.ListJobsInput{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &RestoreOutput{}
	for _, job := range list.Jobs {
		if !job.FireAt.After(now) {
			s.fire(ctx, job)
			out.Expired++
			continue
		}
		s.arm(job)
		out.Armed++
	}

	s.logger.InfoContext(ctx, "Role expirations restored",
		slog.Int("expired", out.Expired),
		slog.Int("armed", out.Armed))
	return out, nil
}

func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// pending reports armed timers
func (s *service) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *service) arm(job *models.RoleExpiration) {
	key := job.Key()
	delay := job.FireAt.Sub(s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	if old, ok := s.timers[key]; ok {
		old.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// replaced, cancelled or stopped since arming
		if s.stopped || s.timers[key] != t {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
		defer cancel()
		s.fire(ctx, job)
	})
	s.timers[key] = t
	s.metrics.ScheduledJobs(len(s.timers))
}

// fire removes the role, forgets the job and announces the expiry.
// The job is deleted even when the removal failed so it is not retried forever.
func (s *service) fire(ctx context.Context, job *models.RoleExpiration) {
	if err := s.roles.RemoveRole(ctx, job.UserID, job.RoleID); err != nil {
		s.logger.WarnContext(ctx, "Expired role not removed",
			slog.String("user_id", job.UserID),
			slog.String("role_id", job.RoleID),
			slog.Any("error", err))
	}

	if err := s.repo.DeleteJob(ctx, &scheduleRepo.DeleteJobInput{
		UserID: job.UserID,
		RoleID: job.RoleID,
	}); err != nil {
		s.logger.WarnContext(ctx, "Expired job not deleted",
			slog.String("user_id", job.UserID),
			slog.String("role_id", job.RoleID),
			slog.Any("error", err))
	}

	if err := s.publisher.Publish(ctx, events.TopicRoleExpired, &models.RoleExpired{
		UserID:   job.UserID,
		RoleID:   job.RoleID,
		RoleName: job.RoleName,
	}); err != nil {
		s.logger.WarnContext(ctx, "Role expired event dropped",
			slog.String("user_id", job.UserID),
			slog.Any("error", err))
	}

	s.metrics.ScheduledJobs(s.pending())
	s.logger.InfoContext(ctx, "Temporary role expired",
		slog.String("user_id", job.UserID),
		slog.String("role_id", job.RoleID))
}
