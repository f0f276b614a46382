package roster

// RosterError is a custom error type for team administration errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTeamNotFound     RosterError = "team not found"
	ErrMemberNotFound   RosterError = "member not found"
	ErrInvalidName      RosterError = "name cannot be empty"
	ErrInvalidConfig    RosterError = "invalid team config"
	ErrNilConfig        RosterError = "config cannot be nil"
	ErrNilTeamRepo      RosterError = "team repository cannot be nil"
	ErrNilMemberRepo    RosterError = "member repository cannot be nil"
	ErrNilClock         RosterError = "clock cannot be nil"
	ErrNilUUIDGenerator RosterError = "UUID generator cannot be nil"
)
