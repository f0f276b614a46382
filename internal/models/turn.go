package models

// Turn is one participant's speaking slot in a session
type Turn struct {
	// MemberID is the member speaking in this turn
	MemberID string

	// MemberName is the display name captured from the roster
	MemberName string

	// Order is the 1-based speaking position
	Order int

	// SpeakingTimeSeconds is how long the member spoke
	SpeakingTimeSeconds int

	// PointsEarned includes any speed bonus
	PointsEarned int

	// Scored is true when PointsEarned was supplied explicitly rather than computed
	Scored bool

	// HasViolation is true when the member spoke past the limit
	HasViolation bool

	// SpeedBonus is true when the turn received the fastest-speaker bonus
	SpeedBonus bool

	// Finalized is set once the turn has ended; the speaking time is immutable afterwards
	Finalized bool

	// Notes is optional free text about the turn
	Notes string
}
