package models

import (
	"time"
)

// PerformerStats summarizes one member's appearances within a report window
type PerformerStats struct {
	// MemberID is the member being summarized
	MemberID string

	// MemberName is the display name of the member
	MemberName string

	// AverageScore is the floored mean points across appearances
	AverageScore int

	// AverageTime is the floored mean speaking time across appearances
	AverageTime int

	// Appearances is the number of sessions the member spoke in
	Appearances int
}

// TrendBucket holds the aggregates of a single calendar day
type TrendBucket struct {
	// Date is the start of the day in the report location
	Date time.Time

	SessionCount    int
	AverageScore    int
	AverageDuration int
}

// Standing is a member's rank by running total score
type Standing struct {
	Rank          int
	MemberID      string
	MemberName    string
	TotalScore    int
	TotalSessions int
	AverageTime   int
	Violations    int
}
