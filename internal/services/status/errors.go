package status

// StatusError is a custom error type for service construction errors
type StatusError string

// Error implements the error interface
func (e StatusError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     StatusError = "config cannot be nil"
	ErrNilSettings   StatusError = "settings reader cannot be nil"
	ErrNilLedgerRepo StatusError = "ledger repository cannot be nil"
	ErrNilClock      StatusError = "clock cannot be nil"
)
