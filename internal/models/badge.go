package models

import (
	"time"
)

// BadgeCategory groups badges by what they reward
type BadgeCategory string

const (
	BadgeCategorySpeed       BadgeCategory = "speed"
	BadgeCategoryQuality     BadgeCategory = "quality"
	BadgeCategoryConsistency BadgeCategory = "consistency"
)

const (
	BadgeSpeedDemon      = "Speed Demon"
	BadgePerfectScore    = "Perfect Score"
	BadgeConsistencyKing = "Consistency King"
	BadgeOnTarget        = "On Target"
)

// Badge is an achievement earned by a member or a team
type Badge struct {
	// Name is unique within the awarding scope
	Name string

	// Description explains how the badge was earned
	Description string

	// Category groups the badge
	Category BadgeCategory

	// Icon is a short emoji shown with the badge
	Icon string

	// EarnedAt is when the badge was first awarded
	EarnedAt time.Time
}

// HasBadge reports whether a badge with the given name is already present
func HasBadge(badges []*Badge, name string) bool {
	for _, b := range badges {
		if b != nil && b.Name == name {
			return true
		}
	}
	return false
}

// AwardBadge appends the badge unless one with the same name exists.
// The existing badge keeps its original EarnedAt.
func AwardBadge(badges []*Badge, badge *Badge) ([]*Badge, bool) {
	if badge == nil || HasBadge(badges, badge.Name) {
		return badges, false
	}
	return append(badges, badge), true
}
