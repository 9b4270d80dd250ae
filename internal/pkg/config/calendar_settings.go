package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CalendarSettings configures access to the consultation calendar.
// Exactly one of CredentialsFile or CredentialsJSON must hold a Google
// service-account key. Subject enables domain-wide delegation.
type CalendarSettings struct {
	CalendarID        string  `mapstructure:"calendar_id" validate:"required"`
	CredentialsFile   string  `mapstructure:"credentials_file"`
	CredentialsJSON   string  `mapstructure:"credentials_json"`
	Subject           string  `mapstructure:"subject" validate:"omitempty,email"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	BurstSize         int     `mapstructure:"burst_size" validate:"gte=0"`
	EventSummary      string  `mapstructure:"event_summary"`
}

// Validate checks the calendar settings
func (s *CalendarSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CalendarSettings: %w", err)
	}
	if (s.CredentialsFile == "") == (s.CredentialsJSON == "") {
		return fmt.Errorf("exactly one of credentials_file or credentials_json is required")
	}
	return nil
}
