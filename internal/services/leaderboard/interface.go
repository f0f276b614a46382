package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standup/internal/services/leaderboard Service

import "context"

// Service defines the read-only reporting operations over completed sessions
type Service interface {
	// GetTeamReport aggregates a team's completed sessions within a window
	GetTeamReport(ctx context.Context, input *GetTeamReportInput) (*GetTeamReportOutput, error)

	// GetMemberStandings ranks a team's active members by running total score
	GetMemberStandings(ctx context.Context, input *GetMemberStandingsInput) (*GetMemberStandingsOutput, error)
}
