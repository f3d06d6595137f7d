package multiplier

// MultiplierError is a custom error type for service construction errors
type MultiplierError string

// Error implements the error interface
func (e MultiplierError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   MultiplierError = "config cannot be nil"
	ErrNilSettings MultiplierError = "settings reader cannot be nil"
	ErrNilStatus   MultiplierError = "status service cannot be nil"
	ErrNilClock    MultiplierError = "clock cannot be nil"
)
