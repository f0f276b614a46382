package leaderboard

// LeaderboardError is a custom error type for reporting errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTeamNotFound   LeaderboardError = "team not found"
	ErrInvalidWindow  LeaderboardError = "report window ends before it starts"
	ErrNilConfig      LeaderboardError = "config cannot be nil"
	ErrNilSessionRepo LeaderboardError = "session repository cannot be nil"
	ErrNilTeamRepo    LeaderboardError = "team repository cannot be nil"
	ErrNilMemberRepo  LeaderboardError = "member repository cannot be nil"
	ErrNilClock       LeaderboardError = "clock cannot be nil"
)
