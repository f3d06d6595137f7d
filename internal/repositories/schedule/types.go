package schedule

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
)

// SaveJobInput contains parameters for storing a job
type SaveJobInput struct {
	Job *models.RoleExpiration
}

// DeleteJobInput contains parameters for removing a job
type DeleteJobInput struct {
	UserID string
	RoleID string
}

// ListJobsInput contains parameters for listing jobs
type ListJobsInput struct {
	// DueBefore limits the listing to jobs firing at or before it. Zero lists everything.
	DueBefore time.Time
}

// ListJobsOutput contains jobs ordered by fire time
type ListJobsOutput struct {
	Jobs []*models.RoleExpiration
}
