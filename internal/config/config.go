package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the process configuration
type Config struct {
	Redis   RedisConfig   `yaml:"redis"`
	Discord DiscordConfig `yaml:"discord"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Economy EconomyConfig `yaml:"economy"`
	Resync  ResyncConfig  `yaml:"resync"`
}

// RedisConfig holds the document store connection
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DiscordConfig holds the bot credentials and the guild it serves
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`
	GuildID       string `yaml:"guild_id"`

	// PurchaseChannelID is watched for purchase log lines
	PurchaseChannelID string `yaml:"purchase_channel_id"`

	// LogChannelID receives role expiry and purchase notices. Empty disables.
	LogChannelID string `yaml:"log_channel_id"`
}

// HTTPConfig holds the health and metrics listener
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds the logger level
type LogConfig struct {
	Level string `yaml:"level"`
}

// EconomyConfig seeds settings no admin has written yet
type EconomyConfig struct {
	Thresholds   tier.Thresholds         `yaml:"thresholds"`
	Daily        models.DailyRange       `yaml:"daily"`
	Transfer     models.TransferSettings `yaml:"transfer"`
	CurrencyName string                  `yaml:"currency_name"`
}

// ResyncConfig bounds the bulk role resync
type ResyncConfig struct {
	PerSecond float64 `yaml:"per_second"`
}

const (
	defaultRedisAddr = "localhost:6379"
	defaultHTTPAddr  = ":8080"
	defaultLogLevel  = "info"
)

// ErrMissingToken is returned when no bot token is configured
var ErrMissingToken = errors.New("discord token is required")

// Load reads a .env file when present, then the YAML file at path, then
// applies environment overrides. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		c.Redis.DB = db
	}
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv("APPLICATION_ID"); v != "" {
		c.Discord.ApplicationID = v
	}
	if v := os.Getenv("GUILD_ID"); v != "" {
		c.Discord.GuildID = v
	}
	if v := os.Getenv("PURCHASE_CHANNEL_ID"); v != "" {
		c.Discord.PurchaseChannelID = v
	}
	if v := os.Getenv("LOG_CHANNEL_ID"); v != "" {
		c.Discord.LogChannelID = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CURRENCY_NAME"); v != "" {
		c.Economy.CurrencyName = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = defaultHTTPAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

// Validate reports settings the bot cannot start without
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return ErrMissingToken
	}
	if c.Discord.GuildID == "" {
		return errors.New("discord guild id is required")
	}
	if t := c.Economy.Thresholds; t != (tier.Thresholds{}) {
		if err := t.Normalized().Validate(); err != nil {
			return fmt.Errorf("economy thresholds: %w", err)
		}
	}
	return nil
}

// Level maps the configured level name onto slog
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
