package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, key := range []string{
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DISCORD_TOKEN", "APPLICATION_ID",
		"GUILD_ID", "PURCHASE_CHANNEL_ID", "LOG_CHANNEL_ID", "HTTP_ADDR", "LOG_LEVEL", "CURRENCY_NAME",
	} {
		s.T().Setenv(key, "")
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestMissingFileUsesDefaults() {
	cfg, err := Load(filepath.Join(s.dir, "absent.yaml"))
	s.Require().NoError(err)
	s.Equal(defaultRedisAddr, cfg.Redis.Addr)
	s.Equal(defaultHTTPAddr, cfg.HTTP.Addr)
	s.Equal(slog.LevelInfo, cfg.Level())
}

func (s *ConfigTestSuite) TestLoadsYAML() {
	path := s.writeFile(`
redis:
  addr: redis:6379
  db: 2
discord:
  token: abc
  guild_id: "42"
  purchase_channel_id: "99"
log:
  level: debug
economy:
  currency_name: gems
  thresholds:
    silver: 50
  daily:
    min: 5
    max: 15
  transfer:
    min: 10
    max: 500
    tax: 0.05
`)

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("redis:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal("42", cfg.Discord.GuildID)
	s.Equal("99", cfg.Discord.PurchaseChannelID)
	s.Equal(slog.LevelDebug, cfg.Level())
	s.Equal("gems", cfg.Economy.CurrencyName)
	s.Equal(tier.Thresholds{Silver: 50}, cfg.Economy.Thresholds)
	s.Equal(models.DailyRange{Min: 5, Max: 15}, cfg.Economy.Daily)
	s.Equal(models.TransferSettings{Min: 10, Max: 500, Tax: 0.05}, cfg.Economy.Transfer)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.writeFile("redis:\n  addr: file:6379\ndiscord:\n  token: file-token\n")
	s.T().Setenv("REDIS_ADDR", "env:6379")
	s.T().Setenv("DISCORD_TOKEN", "env-token")
	s.T().Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("env:6379", cfg.Redis.Addr)
	s.Equal("env-token", cfg.Discord.Token)
	s.Equal(3, cfg.Redis.DB)
}

func (s *ConfigTestSuite) TestInvalidRedisDB() {
	s.T().Setenv("REDIS_DB", "two")

	_, err := Load("")
	s.Error(err)
}

func (s *ConfigTestSuite) TestMalformedYAML() {
	path := s.writeFile("redis: [unclosed")

	_, err := Load(path)
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := &Config{}
	s.Equal(ErrMissingToken, cfg.Validate())

	cfg.Discord.Token = "abc"
	s.Error(cfg.Validate())

	cfg.Discord.GuildID = "42"
	s.NoError(cfg.Validate())

	cfg.Economy.Thresholds = tier.Thresholds{Silver: 500, Gold: 100}
	s.Error(cfg.Validate())
}
