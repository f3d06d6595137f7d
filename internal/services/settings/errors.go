package settings

// SettingsError is a custom error type for service construction errors
type SettingsError string

// Error implements the error interface
func (e SettingsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        SettingsError = "config cannot be nil"
	ErrNilSettingsRepo  SettingsError = "settings repository cannot be nil"
	ErrNilLedgerRepo    SettingsError = "ledger repository cannot be nil"
	ErrNilClock         SettingsError = "clock cannot be nil"
	ErrNilUUIDGenerator SettingsError = "UUID generator cannot be nil"
)
