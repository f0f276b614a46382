package leaderboard

import (
	"sort"
	"time"

	"github.com/KirkDiggler/standup/internal/models"
)

// Supported report periods
const (
	Period7Days  = "7d"
	Period30Days = "30d"
	Period90Days = "90d"
)

// periodDays maps the supported period names to their length in days
var periodDays = map[string]int{
	Period7Days:  7,
	Period30Days: 30,
	Period90Days: 90,
}

const defaultPeriodDays = 30

// Period returns the window covering the named number of calendar days
// ending on now's day, in loc. Unknown names fall back to 30 days.
func Period(name string, now time.Time, loc *time.Location) (time.Time, time.Time) {
	days, ok := periodDays[name]
	if !ok {
		days = defaultPeriodDays
	}

	from := startOfDay(now, loc).AddDate(0, 0, -(days - 1))
	return from, now.In(loc)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// report is the pure aggregation behind GetTeamReport
type report struct {
	totalSessions     int
	averageScore      int
	averageDuration   int
	totalParticipants int
	participationRate int
	topPerformers     []*models.PerformerStats
	trends            []*models.TrendBucket
}

type performerTotals struct {
	name        string
	totalScore  int
	totalTime   int
	appearances int
}

// buildReport aggregates completed sessions. names overrides the display
// names captured on turns; activeMembers is the participation denominator.
func buildReport(sessions []*models.Session, names map[string]string, activeMembers int, from, to time.Time, loc *time.Location) *report {
	r := &report{
		totalSessions: len(sessions),
		trends:        dayBuckets(sessions, from, to, loc),
	}

	if len(sessions) == 0 {
		return r
	}

	var scoreTotal, durationTotal, appearances int
	performers := make(map[string]*performerTotals)

	for _, session := range sessions {
		scoreTotal += session.TeamScore
		durationTotal += session.TotalDurationSeconds

		for _, turn := range session.Turns {
			if turn.MemberID == "" {
				continue
			}
			appearances++

			p, ok := performers[turn.MemberID]
			if !ok {
				p = &performerTotals{name: turn.MemberName}
				performers[turn.MemberID] = p
			}
			p.totalScore += turn.PointsEarned
			p.totalTime += turn.SpeakingTimeSeconds
			p.appearances++
		}
	}

	r.averageScore = scoreTotal / len(sessions)
	r.averageDuration = durationTotal / len(sessions)
	r.totalParticipants = len(performers)

	if possible := len(sessions) * activeMembers; possible > 0 {
		r.participationRate = appearances * 100 / possible
	}

	r.topPerformers = rankPerformers(performers, names)
	return r
}

func rankPerformers(performers map[string]*performerTotals, names map[string]string) []*models.PerformerStats {
	ranked := make([]*models.PerformerStats, 0, len(performers))
	for id, p := range performers {
		name := p.name
		if n, ok := names[id]; ok && n != "" {
			name = n
		}
		ranked = append(ranked, &models.PerformerStats{
			MemberID:     id,
			MemberName:   name,
			AverageScore: p.totalScore / p.appearances,
			AverageTime:  p.totalTime / p.appearances,
			Appearances:  p.appearances,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		if a.Appearances != b.Appearances {
			return a.Appearances > b.Appearances
		}
		return a.MemberID < b.MemberID
	})

	if len(ranked) > TopPerformerCount {
		ranked = ranked[:TopPerformerCount]
	}
	return ranked
}

// dayBuckets returns one bucket per calendar day from from's day to to's
// day inclusive, including days without sessions
func dayBuckets(sessions []*models.Session, from, to time.Time, loc *time.Location) []*models.TrendBucket {
	first := startOfDay(from, loc)
	last := startOfDay(to, loc)

	var buckets []*models.TrendBucket
	index := make(map[time.Time]int)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		index[day] = len(buckets)
		buckets = append(buckets, &models.TrendBucket{Date: day})
	}

	scores := make([]int, len(buckets))
	durations := make([]int, len(buckets))
	for _, session := range sessions {
		i, ok := index[startOfDay(completedAt(session), loc)]
		if !ok {
			continue
		}
		buckets[i].SessionCount++
		scores[i] += session.TeamScore
		durations[i] += session.TotalDurationSeconds
	}

	for i, bucket := range buckets {
		if bucket.SessionCount > 0 {
			bucket.AverageScore = scores[i] / bucket.SessionCount
			bucket.AverageDuration = durations[i] / bucket.SessionCount
		}
	}
	return buckets
}

func completedAt(session *models.Session) time.Time {
	if !session.CompletedAt.IsZero() {
		return session.CompletedAt
	}
	return session.EndTime
}

// rankStandings orders members by running total score. Equal scores share
// a rank and the next rank skips accordingly.
func rankStandings(members []*models.Member, limit int) []*models.Standing {
	sorted := make([]*models.Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Stats, sorted[j].Stats
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.TotalSessions != b.TotalSessions {
			return a.TotalSessions > b.TotalSessions
		}
		return sorted[i].ID < sorted[j].ID
	})

	standings := make([]*models.Standing, 0, len(sorted))
	for i, member := range sorted {
		rank := i + 1
		if i > 0 && member.Stats.TotalScore == sorted[i-1].Stats.TotalScore {
			rank = standings[i-1].Rank
		}
		standings = append(standings, &models.Standing{
			Rank:          rank,
			MemberID:      member.ID,
			MemberName:    member.Name,
			TotalScore:    member.Stats.TotalScore,
			TotalSessions: member.Stats.TotalSessions,
			AverageTime:   member.Stats.AverageTime,
			Violations:    member.Stats.Violations,
		})
	}

	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}
