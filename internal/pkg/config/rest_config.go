package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SF_DATABASE_DSN.
const EnvPrefix = "SF"

// CORSSettings lists the browser origins allowed to call the API.
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1,dive,required"`
}

// JobSettings configures background jobs.
type JobSettings struct {
	BookingCompletionSpec string `mapstructure:"booking_completion_spec" validate:"required"`
}

// RestConfig is the complete configuration of the REST API and CLI.
type RestConfig struct {
	Port       string             `mapstructure:"port" validate:"required,numeric"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	Auth       AuthSettings       `mapstructure:"auth"`
	Calendar   CalendarSettings   `mapstructure:"calendar"`
	Scheduling SchedulingSettings `mapstructure:"scheduling"`
	CORS       CORSSettings       `mapstructure:"cors"`
	Jobs       JobSettings        `mapstructure:"jobs"`
}

// Validate checks the configuration and all nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := validate.Struct(&c.CORS); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}
	if err := validate.Struct(&c.Jobs); err != nil {
		return fmt.Errorf("validation failed for JobSettings: %w", err)
	}

	return errors.Join(
		c.Database.Validate(),
		c.Logger.Validate(),
		c.Auth.Validate(),
		c.Calendar.Validate(),
		c.Scheduling.Validate(),
	)
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Logger.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "smartfitter.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("auth.domain", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.email_claim", "email")
	v.SetDefault("auth.name_claim", "name")
	v.SetDefault("auth.cache_ttl", "5m")
	v.SetDefault("auth.clock_skew", "1m")
	v.SetDefault("calendar.calendar_id", "primary")
	v.SetDefault("calendar.credentials_file", "")
	v.SetDefault("calendar.credentials_json", "")
	v.SetDefault("calendar.subject", "")
	v.SetDefault("calendar.requests_per_second", 5.0)
	v.SetDefault("calendar.burst_size", 10)
	v.SetDefault("calendar.event_summary", "SmartFitter consultation")
	v.SetDefault("scheduling.timezone", "America/Los_Angeles")
	v.SetDefault("scheduling.day_start", "09:00")
	v.SetDefault("scheduling.day_end", "17:00")
	v.SetDefault("scheduling.slot_minutes", 30)
	v.SetDefault("scheduling.lead_time_minutes", 0)
	v.SetDefault("scheduling.max_range_days", 31)
	v.SetDefault("scheduling.skip_weekends", true)
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("jobs.booking_completion_spec", "@every 15m")

	return v
}
