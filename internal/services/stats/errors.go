package stats

// StatsError is a custom error type for statistics errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          StatsError = "config cannot be nil"
	ErrNilLedgerRepo      StatsError = "ledger repository cannot be nil"
	ErrNilClock           StatsError = "clock cannot be nil"
	ErrNilSession         StatsError = "session cannot be nil"
	ErrSessionNotComplete StatsError = "only completed sessions can be counted"
)
