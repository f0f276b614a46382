package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/services/leaderboard"
	"github.com/KirkDiggler/standup/internal/services/meeting"
	"github.com/KirkDiggler/standup/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInfo      = 0x5865f2
	colorSuccess   = 0x00ff00
	colorWarning   = 0xffa500
	colorError     = 0xff0000
	colorCelebrate = 0xffd700
)

// Button IDs
const (
	ButtonNextSpeaker = "standup_next"
	ButtonEndStandup  = "standup_end"
)

// standupButtons returns the controls shown while a standup runs
func standupButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Next Speaker",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonNextSpeaker,
			Emoji: &discordgo.ComponentEmoji{
				Name: "⏭️",
			},
		},
		discordgo.Button{
			Label:    "End Standup",
			Style:    discordgo.DangerButton,
			CustomID: ButtonEndStandup,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🏁",
			},
		},
	}
}

// renderStandupStarted renders the speaking order of a freshly started session
func renderStandupStarted(session *models.Session, speakerID string) *discordgo.MessageEmbed {
	order := ""
	speakerName := speakerID
	for _, turn := range session.Turns {
		marker := ""
		if turn.MemberID == speakerID {
			marker = " 🎙️"
			speakerName = turn.MemberName
		}
		order += fmt.Sprintf("%d. **%s**%s\n", turn.Order, turn.MemberName, marker)
	}
	if order == "" {
		order = "Nobody"
	}

	return &discordgo.MessageEmbed{
		Title:       session.Name,
		Description: fmt.Sprintf("Standup started. **%s** is up first.", speakerName),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Speaking Order",
				Value:  order,
				Inline: false,
			},
			{
				Name:   "Time Limit",
				Value:  messaging.FormatDuration(session.MaxSpeakingTimeSeconds),
				Inline: true,
			},
			{
				Name:   "Scoring",
				Value:  string(session.ScoringMode),
				Inline: true,
			},
		},
	}
}

// renderTurnAdvanced renders the hand-over between two speakers
func renderTurnAdvanced(standup *ActiveStandup, output *meeting.AdvanceTurnOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Next Speaker",
		Color: colorInfo,
	}

	if turn := output.FinalizedTurn; turn != nil {
		value := fmt.Sprintf("%s spoke for %s", standup.Name(turn.MemberID), messaging.FormatDuration(turn.SpeakingTimeSeconds))
		if turn.HasViolation {
			value += " ⏰"
			embed.Color = colorWarning
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Finished",
			Value:  value,
			Inline: false,
		})
	}

	if output.NextMemberID != "" {
		embed.Description = fmt.Sprintf("🎙️ **%s**, you're up!", standup.Name(output.NextMemberID))
	}

	return embed
}

func toneColor(tone messaging.MessageTone) int {
	switch tone {
	case messaging.ToneCelebration:
		return colorCelebrate
	case messaging.ToneSarcastic:
		return colorWarning
	default:
		return colorSuccess
	}
}

// renderSessionCompleted renders the results of a completed session
func renderSessionCompleted(summary *models.SessionSummary, message *messaging.GetSessionCompletedMessageOutput) *discordgo.MessageEmbed {
	winner := summary.WinnerName
	if winner == "" {
		winner = "-"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Team Score",
			Value:  fmt.Sprintf("%d", summary.TeamScore),
			Inline: true,
		},
		{
			Name:   "Duration",
			Value:  messaging.FormatDuration(summary.TotalDurationSeconds),
			Inline: true,
		},
		{
			Name:   "Winner",
			Value:  winner,
			Inline: true,
		},
	}

	if len(message.Lines) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Turns",
			Value:  strings.Join(message.Lines, "\n"),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       message.Title,
		Description: message.Message,
		Color:       toneColor(message.Tone),
		Fields:      fields,
	}
}

// renderReport renders a team report over a window
func renderReport(report *leaderboard.GetTeamReportOutput) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Standups",
			Value:  fmt.Sprintf("%d", report.TotalSessions),
			Inline: true,
		},
		{
			Name:   "Average Score",
			Value:  fmt.Sprintf("%d", report.AverageScore),
			Inline: true,
		},
		{
			Name:   "Average Duration",
			Value:  messaging.FormatDuration(report.AverageDuration),
			Inline: true,
		},
		{
			Name:   "Participation",
			Value:  fmt.Sprintf("%d%% of %d members", report.ParticipationRate, report.TotalParticipants),
			Inline: true,
		},
	}

	performers := ""
	for i, p := range report.TopPerformers {
		performers += fmt.Sprintf("%d. **%s**: %d pts avg, %s avg over %d standup(s)\n",
			i+1, p.MemberName, p.AverageScore, messaging.FormatDuration(p.AverageTime), p.Appearances)
	}
	if performers != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Top Performers",
			Value:  performers,
			Inline: false,
		})
	}

	trends := ""
	for _, bucket := range report.Trends {
		if bucket.SessionCount == 0 {
			continue
		}
		trends += fmt.Sprintf("%s: %d standup(s), score %d, %s\n",
			bucket.Date.Format("Mon Jan 2"), bucket.SessionCount, bucket.AverageScore, messaging.FormatDuration(bucket.AverageDuration))
	}
	if trends == "" {
		trends = "No standups in this window"
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Daily Trend",
		Value:  trends,
		Inline: false,
	})

	return &discordgo.MessageEmbed{
		Title:       "Standup Report",
		Description: fmt.Sprintf("%s to %s", report.From.Format("2006-01-02"), report.To.Format("2006-01-02")),
		Color:       colorInfo,
		Fields:      fields,
	}
}

// renderStandings renders pre-formatted standings lines
func renderStandings(lines []string) *discordgo.MessageEmbed {
	description := strings.Join(lines, "\n")
	if description == "" {
		description = "No standings yet. Finish a standup first!"
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Standings",
		Description: description,
		Color:       colorCelebrate,
	}
}

// renderWrapUp acknowledges a completed standup; the full results follow separately
func renderWrapUp(summary *models.SessionSummary) *discordgo.MessageEmbed {
	description := "Full results are on their way."
	if summary != nil {
		description = fmt.Sprintf("Team score **%d**. %s", summary.TeamScore, description)
	}

	return &discordgo.MessageEmbed{
		Title:       "That's a Wrap!",
		Description: description,
		Color:       colorSuccess,
	}
}
