//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
auth:
  domain: smartfitter.us.auth0.com
  audience: https://api.smartfitter.app
calendar:
  calendar_id: consultations@smartfitter.app
  credentials_json: '{"type":"service_account"}'
scheduling:
  timezone: America/New_York
  slot_minutes: 45
cors:
  allow_origins:
    - https://app.smartfitter.app
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_LoadsFileAndDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "consultations@smartfitter.app", cfg.Calendar.CalendarID)
	assert.Equal(t, "America/New_York", cfg.Scheduling.Timezone)
	assert.Equal(t, 45, cfg.Scheduling.SlotMinutes)
	assert.Equal(t, "09:00", cfg.Scheduling.DayStart)
	assert.True(t, cfg.Scheduling.SkipWeekends)
	assert.Equal(t, 5*time.Minute, cfg.Auth.CacheTTL)
	assert.Equal(t, []string{"https://app.smartfitter.app"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "@every 15m", cfg.Jobs.BookingCompletionSpec)
}

func TestInitializeRestConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("SF_PORT", "7070")
	t.Setenv("SF_SCHEDULING_DAY_END", "18:30")

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "18:30", cfg.Scheduling.DayEnd)
}

func TestInitializeRestConfig_FileLoggerDefaults(t *testing.T) {
	t.Setenv("SF_LOGGER_LOG_TYPE", LogTypeFile)

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogFilePath, cfg.Logger.FilePath)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Logger.MaxSize)
	assert.Equal(t, DefaultLogMaxAgeDays, cfg.Logger.MaxAge)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, `
database:
  type: oracle
  dsn: x
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DatabaseSettings")
}
