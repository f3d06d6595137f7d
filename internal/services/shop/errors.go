package shop

// ShopError is a custom error type for service construction errors
type ShopError string

// Error implements the error interface
func (e ShopError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    ShopError = "config cannot be nil"
	ErrNilSettings  ShopError = "settings reader cannot be nil"
	ErrNilPoints    ShopError = "points service cannot be nil"
	ErrNilRoles     ShopError = "role granter cannot be nil"
	ErrNilScheduler ShopError = "scheduler cannot be nil"
	ErrNilClock     ShopError = "clock cannot be nil"
)
