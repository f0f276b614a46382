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

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	standup    *StandupCommand
	config     *Config
	logger     logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// TeamID is the team whose standups the bot runs
	TeamID string

	MeetingService     meeting.Service
	LeaderboardService leaderboard.Service
	MessagingService   messaging.Service
	RosterService      roster.Service

	// Channels is shared with the notifier
	Channels *ChannelRegistry

	Logger logrus.FieldLogger
}

// NewSession creates a Discord session for a bot token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.TeamID == "" {
		return nil, errors.New("team id cannot be empty")
	}

	if cfg.MeetingService == nil {
		return nil, errors.New("meeting service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.Channels == nil {
		cfg.Channels = NewChannelRegistry()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	cfg.Logger = cfg.Logger.WithField("component", "discord_bot")

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		standup:    NewStandupCommand(cfg),
		config:     cfg,
		logger:     cfg.Logger,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.standup); err != nil {
		return fmt.Errorf("failed to register standup command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		log := b.logger.WithFields(logrus.Fields{
			"command":    cmdName,
			"command_id": cmdID,
		})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("failed to delete command")
		} else {
			log.Debug("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Without a guild ID the
// command is registered globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	b.logger.WithFields(logrus.Fields{
		"command":    cmd.GetName(),
		"command_id": createdCmd.ID,
		"guild_id":   b.config.GuildID,
	}).Info("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(context.Background(), s, i)
}

func (b *Bot) dispatch(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(ctx, r, i); err != nil {
				b.logger.WithField("command", name).WithError(err).Error("failed to handle command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.standup.HandleComponent(ctx, r, i); err != nil {
			b.logger.WithError(err).Error("failed to handle component interaction")
		}
	}
}
