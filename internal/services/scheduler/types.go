package scheduler

import "github.com/KirkDiggler/rewardsbot/internal/models"

// ScheduleInput contains the expiration to arm
type ScheduleInput struct {
	Job *models.RoleExpiration
}

// CancelInput identifies an expiration
type CancelInput struct {
	UserID string
	RoleID string
}

// RestoreOutput reports a restore at startup
type RestoreOutput struct {
	// Expired jobs were past due and fired during Restore
	Expired int

	// Armed jobs are waiting on a timer
	Armed int
}
