package scheduler

// SchedulerError is a custom error type for service construction errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       SchedulerError = "config cannot be nil"
	ErrNilScheduleRepo SchedulerError = "schedule repository cannot be nil"
	ErrNilRoleRemover  SchedulerError = "role remover cannot be nil"
	ErrNilPublisher    SchedulerError = "event publisher cannot be nil"
	ErrNilClock        SchedulerError = "clock cannot be nil"
)
