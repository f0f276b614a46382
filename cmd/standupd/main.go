package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/common/uuid"
	"github.com/KirkDiggler/standup/internal/config"
	"github.com/KirkDiggler/standup/internal/handlers/discord"
	"github.com/KirkDiggler/standup/internal/handlers/events"
	"github.com/KirkDiggler/standup/internal/handlers/health"
	"github.com/KirkDiggler/standup/internal/handlers/teams"
	"github.com/KirkDiggler/standup/internal/notifier"
	"github.com/KirkDiggler/standup/internal/repositories/ledger"
	"github.com/KirkDiggler/standup/internal/repositories/member"
	"github.com/KirkDiggler/standup/internal/repositories/session"
	"github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/KirkDiggler/standup/internal/server"
	"github.com/KirkDiggler/standup/internal/services/leaderboard"
	"github.com/KirkDiggler/standup/internal/services/meeting"
	"github.com/KirkDiggler/standup/internal/services/messaging"
	"github.com/KirkDiggler/standup/internal/services/roster"
	"github.com/KirkDiggler/standup/internal/services/stats"
	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(cfg.LogLevel)

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	logger.WithField("addr", cfg.RedisAddr).Info("connected to redis")

	teamRepo, err := team.NewRedis(&team.Config{RedisClient: rdb})
	if err != nil {
		return fmt.Errorf("creating team repository: %w", err)
	}

	memberRepo, err := member.NewRedis(&member.Config{RedisClient: rdb})
	if err != nil {
		return fmt.Errorf("creating member repository: %w", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: rdb})
	if err != nil {
		return fmt.Errorf("creating session repository: %w", err)
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.Config{RedisClient: rdb})
	if err != nil {
		return fmt.Errorf("creating ledger repository: %w", err)
	}

	// --- Services ---
	systemClock := &clock.DefaultClock{}

	statsSvc, err := stats.New(&stats.Config{
		LedgerRepo: ledgerRepo,
		Clock:      systemClock,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("creating stats service: %w", err)
	}

	rosterSvc, err := roster.New(&roster.Config{
		TeamRepo:      teamRepo,
		MemberRepo:    memberRepo,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("creating roster service: %w", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		return fmt.Errorf("creating messaging service: %w", err)
	}

	leaderboardSvc, err := leaderboard.New(&leaderboard.Config{
		SessionRepo: sessionRepo,
		TeamRepo:    teamRepo,
		MemberRepo:  memberRepo,
		Clock:       systemClock,
		Location:    cfg.Location(),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating leaderboard service: %w", err)
	}

	broker := notifier.NewBroker()
	notifiers := notifier.Multi{broker}

	// --- Discord ---
	var (
		discordSession *discordgo.Session
		channels       = discord.NewChannelRegistry()
	)
	if cfg.DiscordEnabled() {
		ds, err := discord.NewSession(cfg.DiscordToken)
		if err != nil {
			return err
		}

		discordNotifier, err := discord.NewNotifier(&discord.NotifierConfig{
			Sender:           ds,
			MessagingService: messagingSvc,
			Channels:         channels,
			DefaultChannelID: cfg.DiscordChannelID,
			Logger:           logger,
		})
		if err != nil {
			return fmt.Errorf("creating discord notifier: %w", err)
		}

		notifiers = append(notifiers, discordNotifier)
		discordSession = ds
	}

	meetingSvc, err := meeting.New(&meeting.Config{
		SessionRepo:   sessionRepo,
		TeamRepo:      teamRepo,
		MemberRepo:    memberRepo,
		StatsService:  statsSvc,
		Notifier:      notifiers,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		StreakPolicy:  cfg.StreakPolicy(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("creating meeting service: %w", err)
	}

	if discordSession != nil {
		bot, err := discord.New(&discord.Config{
			Session:            discordSession,
			ApplicationID:      cfg.DiscordApplicationID,
			GuildID:            cfg.DiscordGuildID,
			TeamID:             cfg.DiscordTeamID,
			MeetingService:     meetingSvc,
			LeaderboardService: leaderboardSvc,
			MessagingService:   messagingSvc,
			RosterService:      rosterSvc,
			Channels:           channels,
			Logger:             logger,
		})
		if err != nil {
			return fmt.Errorf("creating discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			return fmt.Errorf("starting discord bot: %w", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				logger.WithError(err).Warn("failed to stop discord bot")
			}
		}()
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, func(r chi.Router) {
		r.Mount("/healthz", health.NewHandler(logger, map[string]health.Checker{
			"redis": health.RedisChecker{Client: rdb},
		}).Routes())
		r.Mount("/sessions", events.NewHandler(logger, broker).Routes())
		r.Mount("/teams", teams.NewHandler(logger, rosterSvc).Routes())
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithField("interval", cfg.TickInterval.String()).Info("starting turn ticker")
		meetingSvc.RunTicker(gctx, cfg.TickInterval)
		return nil
	})

	g.Go(func() error {
		logger.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
