package ledger

import "github.com/KirkDiggler/standup/internal/models"

type CommitSessionInput struct {
	// Session is written as given, replacing the stored record
	Session *models.Session

	// ApplyMember mutates a freshly loaded participant for its turn. It may run
	// more than once when a concurrent write forces a retry, so it must only
	// touch the member.
	ApplyMember func(member *models.Member, turn *models.Turn) error

	// ApplyTeam mutates the freshly loaded team, under the same retry rules
	ApplyTeam func(team *models.Team) error
}

type CommitSessionOutput struct {
	// Members is the state of each turn's member after the commit, in turn
	// order. An entry is nil when the member no longer exists.
	Members []*models.Member

	Team *models.Team

	// Committed is false when the session had already been counted, in which
	// case Members and Team are the current states
	Committed bool
}
