package notify

// NotifyError is a custom error type for service construction errors
type NotifyError string

// Error implements the error interface
func (e NotifyError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     NotifyError = "config cannot be nil"
	ErrNilSubscriber NotifyError = "event subscriber cannot be nil"
	ErrNilChannel    NotifyError = "notification channel cannot be nil"
)
