package meeting

// MeetingError is a custom error type for session lifecycle errors
type MeetingError string

// Error implements the error interface
func (e MeetingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidTransition    MeetingError = "invalid session state transition"
	ErrParticipantNotFound  MeetingError = "participant not found in session"
	ErrInvalidTeam          MeetingError = "team does not exist or has no active members"
	ErrSessionAlreadyActive MeetingError = "team already has an active session"
	ErrInvalidOperation     MeetingError = "operation not permitted on this session"
	ErrSessionNotFound      MeetingError = "session not found"
	ErrNoTurnRunning        MeetingError = "no turn is running"
	ErrTurnAlreadyRunning   MeetingError = "a turn is already running"
	ErrTickRejected         MeetingError = "tick rejected: session is busy"
	ErrSessionComplete      MeetingError = "every turn has been taken"
	ErrNilConfig            MeetingError = "config cannot be nil"
	ErrNilSessionRepo       MeetingError = "session repository cannot be nil"
	ErrNilTeamRepo          MeetingError = "team repository cannot be nil"
	ErrNilMemberRepo        MeetingError = "member repository cannot be nil"
	ErrNilStatsService      MeetingError = "stats service cannot be nil"
	ErrNilClock             MeetingError = "clock cannot be nil"
	ErrNilUUIDGenerator     MeetingError = "UUID generator cannot be nil"
)
