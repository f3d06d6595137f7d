package rolesync

// RoleSyncError is a custom error type for service construction errors
type RoleSyncError string

// Error implements the error interface
func (e RoleSyncError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     RoleSyncError = "config cannot be nil"
	ErrNilSettings   RoleSyncError = "settings reader cannot be nil"
	ErrNilStatus     RoleSyncError = "status service cannot be nil"
	ErrNilLedgerRepo RoleSyncError = "ledger repository cannot be nil"
	ErrNilGuild      RoleSyncError = "guild cannot be nil"
	ErrNilPublisher  RoleSyncError = "event publisher cannot be nil"
	ErrNilClock      RoleSyncError = "clock cannot be nil"
)
