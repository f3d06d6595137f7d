package points

// PointsError is a custom error type for service construction errors
type PointsError string

// Error implements the error interface
func (e PointsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        PointsError = "config cannot be nil"
	ErrNilLedgerRepo    PointsError = "ledger repository cannot be nil"
	ErrNilSettings      PointsError = "settings reader cannot be nil"
	ErrNilStatus        PointsError = "status service cannot be nil"
	ErrNilMultiplier    PointsError = "multiplier service cannot be nil"
	ErrNilRoleSync      PointsError = "role sync service cannot be nil"
	ErrNilPublisher     PointsError = "event publisher cannot be nil"
	ErrNilRoller        PointsError = "roller cannot be nil"
	ErrNilClock         PointsError = "clock cannot be nil"
	ErrNilUUIDGenerator PointsError = "UUID generator cannot be nil"
)
