// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultUploadTTL       = 24 * time.Hour
	DefaultCleanupSchedule = "@hourly"
)

// Settings contains the application configuration. The channel secret,
// access token, and bucket are required; everything else has a default.
type Settings struct {
	ChannelSecret      string        `env:"LINE_CHANNEL_SECRET" validate:"required"`
	ChannelAccessToken string        `env:"LINE_CHANNEL_ACCESS_TOKEN" validate:"required"`
	Bucket             string        `env:"GCS_BUCKET" validate:"required"`
	AdminUserIDs       []string      `env:"ADMIN_USER_IDS" envSeparator:","`
	Port               int           `env:"PORT"`
	LogLevel           string        `env:"LOG_LEVEL"`
	LogFormat          string        `env:"LOG_FORMAT"`
	EchoPrefix         string        `env:"ECHO_PREFIX"`
	PresetsPath        string        `env:"PRESETS_PATH"`
	UploadTTL          time.Duration `env:"UPLOAD_TTL"`
	CleanupSchedule    string        `env:"CLEANUP_SCHEDULE"`
}

// Load parses the environment into Settings, applies defaults, and validates
// required values. A missing required variable is an error; callers treat it
// as fatal at startup.
func Load() (Settings, error) {
	s := Settings{
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		UploadTTL:       DefaultUploadTTL,
		CleanupSchedule: DefaultCleanupSchedule,
	}
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	s.AdminUserIDs = normalizeIDs(s.AdminUserIDs)
	if err := validator.New().Struct(s); err != nil {
		return Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	return s, nil
}

// Addr returns the listen address for the HTTP server.
func (s Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// IsAdmin reports whether userID is in the configured admin set.
func (s Settings) IsAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range s.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}
