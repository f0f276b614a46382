package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standup/internal/services/leaderboard"
	"github.com/KirkDiggler/standup/internal/services/meeting"
	"github.com/KirkDiggler/standup/internal/services/messaging"
	"github.com/KirkDiggler/standup/internal/services/roster"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// standingsLimit caps the members listed by /standup standings
const standingsLimit = 10

// StandupCommand handles the /standup command
type StandupCommand struct {
	BaseCommand
	meetingService     meeting.Service
	leaderboardService leaderboard.Service
	messagingService   messaging.Service
	rosterService      roster.Service
	channels           *ChannelRegistry
	teamID             string
	logger             logrus.FieldLogger
}

// NewStandupCommand creates a new standup command handler
func NewStandupCommand(cfg *Config) *StandupCommand {
	channels := cfg.Channels
	if channels == nil {
		channels = NewChannelRegistry()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &StandupCommand{
		BaseCommand: BaseCommand{
			Name:        "standup",
			Description: "Run and score the team standup",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a standup with every active member",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the standup",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "next",
					Description: "End the current turn and hand over to the next speaker",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Finish the standup and score it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Abandon the standup without scoring it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "report",
					Description: "Show the team report",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "period",
							Description: "Window to report on",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Last 7 days", Value: leaderboard.Period7Days},
								{Name: "Last 30 days", Value: leaderboard.Period30Days},
								{Name: "Last 90 days", Value: leaderboard.Period90Days},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show members ranked by total score",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Take a turn in future standups",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Your role, shown next to your name",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Stop taking turns in future standups",
				},
			},
		},
		meetingService:     cfg.MeetingService,
		leaderboardService: cfg.LeaderboardService,
		messagingService:   cfg.MessagingService,
		rosterService:      cfg.RosterService,
		channels:           channels,
		teamID:             cfg.TeamID,
		logger:             logger,
	}
}

// Handle processes a Discord interaction for the standup command
func (c *StandupCommand) Handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "start":
		return c.handleStart(ctx, r, i, optionString(sub, "name"))
	case "next":
		return c.handleNext(ctx, r, i)
	case "end":
		return c.handleEnd(ctx, r, i)
	case "cancel":
		return c.handleCancel(ctx, r, i)
	case "report":
		return c.handleReport(ctx, r, i, optionString(sub, "period"))
	case "standings":
		return c.handleStandings(ctx, r, i)
	case "join":
		return c.handleJoin(ctx, r, i, optionString(sub, "title"))
	case "leave":
		return c.handleLeave(ctx, r, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// HandleComponent processes the standup buttons
func (c *StandupCommand) HandleComponent(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	switch customID := i.MessageComponentData().CustomID; customID {
	case ButtonNextSpeaker:
		return c.handleNext(ctx, r, i)
	case ButtonEndStandup:
		return c.handleEnd(ctx, r, i)
	default:
		return RespondWithError(r, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

func optionString(option *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range option.Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue()
		}
	}
	return ""
}

// userMessage turns a service error into something fit for the channel
func userMessage(err error) string {
	switch {
	case errors.Is(err, meeting.ErrSessionAlreadyActive):
		return "A standup is already running for this team."
	case errors.Is(err, meeting.ErrInvalidTeam):
		return "This team has no active members to call on."
	case errors.Is(err, meeting.ErrInvalidTransition), errors.Is(err, meeting.ErrNoTurnRunning):
		return "That can't be done at this point of the standup."
	case errors.Is(err, meeting.ErrSessionNotFound):
		return "That standup no longer exists."
	case errors.Is(err, leaderboard.ErrTeamNotFound), errors.Is(err, roster.ErrTeamNotFound):
		return "This team doesn't exist yet."
	default:
		return "Something went wrong, please try again."
	}
}

func (c *StandupCommand) fail(r Responder, i *discordgo.InteractionCreate, action string, err error) error {
	c.logger.WithFields(logrus.Fields{
		"channel_id": i.ChannelID,
		"team_id":    c.teamID,
	}).WithError(err).Warn(action + " failed")
	return RespondWithError(r, i, userMessage(err))
}

// running returns the standup bound to the interaction's channel. The binding
// is lost on restart, so the team's active session is adopted when present.
func (c *StandupCommand) running(ctx context.Context, r Responder, i *discordgo.InteractionCreate) (*ActiveStandup, error) {
	if standup, ok := c.channels.ByChannel(i.ChannelID); ok {
		return standup, nil
	}

	active, err := c.meetingService.GetActiveSession(ctx, &meeting.GetActiveSessionInput{
		TeamID: c.teamID,
	})
	if err != nil {
		if errors.Is(err, meeting.ErrSessionNotFound) {
			return nil, RespondWithEphemeralMessage(r, i, "No standup is running in this channel. Use `/standup start` to begin.")
		}
		return nil, c.fail(r, i, "get active session", err)
	}

	c.channels.Track(i.ChannelID, active.Session)
	c.logger.WithFields(logrus.Fields{
		"channel_id": i.ChannelID,
		"session_id": active.Session.ID,
	}).Info("adopted active standup")

	standup, _ := c.channels.ByChannel(i.ChannelID)
	return standup, nil
}

// handleStart handles the start subcommand
func (c *StandupCommand) handleStart(ctx context.Context, r Responder, i *discordgo.InteractionCreate, name string) error {
	created, err := c.meetingService.CreateSession(ctx, &meeting.CreateSessionInput{
		TeamID: c.teamID,
		Name:   name,
	})
	if err != nil {
		return c.fail(r, i, "create session", err)
	}

	started, err := c.meetingService.StartSession(ctx, &meeting.StartSessionInput{
		SessionID: created.Session.ID,
	})
	if err != nil {
		// The planned session would otherwise linger
		if _, cancelErr := c.meetingService.CancelSession(ctx, &meeting.CancelSessionInput{
			SessionID: created.Session.ID,
		}); cancelErr != nil {
			c.logger.WithField("session_id", created.Session.ID).WithError(cancelErr).Warn("failed to cancel unstarted session")
		}
		return c.fail(r, i, "start session", err)
	}

	// Tracked before the first turn so end and cancel still reach it
	c.channels.Track(i.ChannelID, started.Session)

	turn, err := c.meetingService.StartTurn(ctx, &meeting.StartTurnInput{
		SessionID: started.Session.ID,
	})
	if err != nil {
		return c.fail(r, i, "start turn", err)
	}

	c.logger.WithFields(logrus.Fields{
		"channel_id": i.ChannelID,
		"session_id": started.Session.ID,
	}).Info("standup started from discord")

	return RespondWithEmbedAndButtons(r, i, renderStandupStarted(started.Session, turn.MemberID), standupButtons())
}

// handleNext handles the next subcommand and button
func (c *StandupCommand) handleNext(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	standup, err := c.running(ctx, r, i)
	if standup == nil {
		return err
	}

	output, err := c.meetingService.AdvanceTurn(ctx, &meeting.AdvanceTurnInput{
		SessionID: standup.SessionID,
	})
	if err != nil {
		return c.fail(r, i, "advance turn", err)
	}

	if output.Completed {
		return RespondWithEmbed(r, i, renderWrapUp(output.Summary))
	}

	return RespondWithEmbedAndButtons(r, i, renderTurnAdvanced(standup, output), standupButtons())
}

// handleEnd handles the end subcommand and button
func (c *StandupCommand) handleEnd(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	standup, err := c.running(ctx, r, i)
	if standup == nil {
		return err
	}

	output, err := c.meetingService.CompleteSession(ctx, &meeting.CompleteSessionInput{
		SessionID: standup.SessionID,
	})
	if err != nil {
		return c.fail(r, i, "complete session", err)
	}

	return RespondWithEmbed(r, i, renderWrapUp(output.Summary))
}

// handleCancel handles the cancel subcommand
func (c *StandupCommand) handleCancel(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	standup, err := c.running(ctx, r, i)
	if standup == nil {
		return err
	}

	if _, err := c.meetingService.CancelSession(ctx, &meeting.CancelSessionInput{
		SessionID: standup.SessionID,
	}); err != nil {
		return c.fail(r, i, "cancel session", err)
	}

	c.channels.Forget(standup.SessionID)

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       "Standup Cancelled",
		Description: "Nothing was scored. See you next time!",
		Color:       colorWarning,
	})
}

// handleReport handles the report subcommand
func (c *StandupCommand) handleReport(ctx context.Context, r Responder, i *discordgo.InteractionCreate, period string) error {
	report, err := c.leaderboardService.GetTeamReport(ctx, &leaderboard.GetTeamReportInput{
		TeamID: c.teamID,
		Period: period,
	})
	if err != nil {
		return c.fail(r, i, "get team report", err)
	}

	return RespondWithEmbed(r, i, renderReport(report))
}

// handleStandings handles the standings subcommand
func (c *StandupCommand) handleStandings(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	output, err := c.leaderboardService.GetMemberStandings(ctx, &leaderboard.GetMemberStandingsInput{
		TeamID: c.teamID,
		Limit:  standingsLimit,
	})
	if err != nil {
		return c.fail(r, i, "get standings", err)
	}

	lines := make([]string, 0, len(output.Standings))
	for _, standing := range output.Standings {
		message, err := c.messagingService.GetStandingMessage(ctx, &messaging.GetStandingMessageInput{
			MemberName:   standing.MemberName,
			Rank:         standing.Rank,
			TotalMembers: len(output.Standings),
			TotalScore:   standing.TotalScore,
		})
		if err != nil {
			return c.fail(r, i, "render standings", err)
		}
		lines = append(lines, message.Message)
	}

	return RespondWithEmbed(r, i, renderStandings(lines))
}

// interactionUser is the member invoking the interaction in a guild, or the
// user in a direct message
func interactionUser(i *discordgo.InteractionCreate) (*discordgo.User, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.Nick
		if name == "" {
			name = i.Member.User.GlobalName
		}
		if name == "" {
			name = i.Member.User.Username
		}
		return i.Member.User, name
	}
	if i.User != nil {
		name := i.User.GlobalName
		if name == "" {
			name = i.User.Username
		}
		return i.User, name
	}
	return nil, ""
}

// handleJoin adds the caller to the team, keyed by their Discord account
func (c *StandupCommand) handleJoin(ctx context.Context, r Responder, i *discordgo.InteractionCreate, title string) error {
	user, name := interactionUser(i)
	if user == nil {
		return RespondWithError(r, i, "Couldn't tell who you are.")
	}

	output, err := c.rosterService.AddMember(ctx, &roster.AddMemberInput{
		TeamID: c.teamID,
		Member: &roster.NewMember{
			Name:       name,
			Title:      title,
			Avatar:     user.AvatarURL(""),
			ExternalID: user.ID,
		},
	})
	if err != nil {
		return c.fail(r, i, "join team", err)
	}

	if !output.Created && !output.Reactivated {
		return RespondWithEphemeralMessage(r, i, "You're already on the team.")
	}

	c.logger.WithFields(logrus.Fields{
		"team_id":   c.teamID,
		"member_id": output.Member.ID,
	}).Info("member joined from discord")

	return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Welcome, %s! You'll be called on from the next standup.", output.Member.Name))
}

// handleLeave deactivates the caller's member record
func (c *StandupCommand) handleLeave(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	user, _ := interactionUser(i)
	if user == nil {
		return RespondWithError(r, i, "Couldn't tell who you are.")
	}

	output, err := c.rosterService.ListMembers(ctx, &roster.ListMembersInput{
		TeamID:     c.teamID,
		ActiveOnly: true,
	})
	if err != nil {
		return c.fail(r, i, "list members", err)
	}

	for _, member := range output.Members {
		if member.ExternalID != user.ID {
			continue
		}

		if err := c.rosterService.DeactivateMember(ctx, &roster.DeactivateMemberInput{
			TeamID:   c.teamID,
			MemberID: member.ID,
		}); err != nil {
			return c.fail(r, i, "leave team", err)
		}

		c.logger.WithFields(logrus.Fields{
			"team_id":   c.teamID,
			"member_id": member.ID,
		}).Info("member left from discord")

		return RespondWithEphemeralMessage(r, i, "You won't be called on in future standups. Your stats are kept.")
	}

	return RespondWithEphemeralMessage(r, i, "You're not on the team.")
}
