package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort          = 8080
	defaultLogLevel      = "info"
	defaultSeedPath      = "seed.yaml"
	defaultTrendingLimit = 5
	defaultUserID        = "local-user"
	defaultUserName      = "You"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      int    `validate:"min=1,max=65535"`
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty bool

	// SeedFile, when set, replaces the built-in demo posts.
	SeedFile string
	// SeedGithub* point at a seed file kept in a GitHub repository. Owner and repo go together.
	SeedGithubOwner string `validate:"required_with=SeedGithubRepo"`
	SeedGithubRepo  string `validate:"required_with=SeedGithubOwner"`
	SeedGithubPath  string `validate:"required"`
	SeedGithubRef   string

	TrendingLimit int `validate:"min=1"`

	// Default identity for requests that carry no identity headers
	UserID     string `validate:"required"`
	UserName   string `validate:"required"`
	UserAvatar string
}

// Load reads a .env file if one exists, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	cfg := &Config{
		Port:            getEnvAsInt("PAWFEED_PORT", defaultPort),
		LogLevel:        getEnv("PAWFEED_LOG_LEVEL", defaultLogLevel),
		LogPretty:       getEnvAsBool("PAWFEED_LOG_PRETTY", false),
		SeedFile:        getEnv("PAWFEED_SEED_FILE", ""),
		SeedGithubOwner: getEnv("PAWFEED_SEED_GITHUB_OWNER", ""),
		SeedGithubRepo:  getEnv("PAWFEED_SEED_GITHUB_REPO", ""),
		SeedGithubPath:  getEnv("PAWFEED_SEED_GITHUB_PATH", defaultSeedPath),
		SeedGithubRef:   getEnv("PAWFEED_SEED_GITHUB_REF", ""),
		TrendingLimit:   getEnvAsInt("PAWFEED_TRENDING_LIMIT", defaultTrendingLimit),
		UserID:          getEnv("PAWFEED_USER_ID", defaultUserID),
		UserName:        getEnv("PAWFEED_USER_NAME", defaultUserName),
		UserAvatar:      getEnv("PAWFEED_USER_AVATAR", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UsesGithubSeed reports whether seed posts come from GitHub.
func (c *Config) UsesGithubSeed() bool {
	return c.SeedGithubOwner != "" && c.SeedGithubRepo != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int("default", fallback).Msg("Invalid integer setting, using default")
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Bool("default", fallback).Msg("Invalid boolean setting, using default")
		return fallback
	}
	return value
}
