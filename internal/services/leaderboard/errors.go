package leaderboard

// LeaderboardError is a custom error type for service construction errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilLedgerRepo LeaderboardError = "ledger repository cannot be nil"
	ErrNilClock      LeaderboardError = "clock cannot be nil"
)
