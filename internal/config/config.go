// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings of standupd
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	HTTPAddr string       `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel logrus.Level `env:"LOG_LEVEL" envDefault:"info"`

	// TickInterval is how often running turns advance by one second
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`

	// TrendLocation is the time zone reports and streaks bucket days in
	TrendLocation string `env:"TREND_LOCATION" envDefault:"UTC"`

	// Streak is how far apart two sessions may be and still extend a streak
	Streak string `env:"STREAK_POLICY" envDefault:"calendar_day"`

	// Discord is disabled when no token is set
	DiscordToken         string `env:"DISCORD_TOKEN"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`
	DiscordChannelID     string `env:"DISCORD_CHANNEL_ID"`
	DiscordTeamID        string `env:"DISCORD_TEAM_ID"`
}

// Load reads an optional .env file and then parses the environment. Values
// already present in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the parser cannot
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.New("TICK_INTERVAL must be positive")
	}

	if _, err := time.LoadLocation(c.TrendLocation); err != nil {
		return fmt.Errorf("invalid TREND_LOCATION %q: %w", c.TrendLocation, err)
	}

	switch c.Streak {
	case streakCalendarDay, streakWorkday, streakNone:
	default:
		return fmt.Errorf("invalid STREAK_POLICY %q", c.Streak)
	}

	if c.DiscordEnabled() && c.DiscordTeamID == "" {
		return errors.New("DISCORD_TEAM_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}

// Location returns the parsed TrendLocation
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TrendLocation)
	if err != nil {
		return time.UTC
	}
	return loc
}

const (
	streakCalendarDay = "calendar_day"
	streakWorkday     = "workday"
	streakNone        = "none"
)

// StreakPolicy returns the configured streak rule evaluated in Location
func (c *Config) StreakPolicy() streak.Policy {
	switch c.Streak {
	case streakWorkday:
		return streak.NextWorkday(c.Location())
	case streakNone:
		return streak.Never
	default:
		return streak.NextCalendarDay(c.Location())
	}
}

// DiscordEnabled reports whether the Discord bot should run
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
