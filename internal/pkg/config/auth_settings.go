package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer-token validation against an Auth0 tenant.
type AuthSettings struct {
	Domain     string        `mapstructure:"domain" validate:"required,hostname"`
	Audience   string        `mapstructure:"audience" validate:"required"`
	EmailClaim string        `mapstructure:"email_claim"`
	NameClaim  string        `mapstructure:"name_claim"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	ClockSkew  time.Duration `mapstructure:"clock_skew"`
}

// IssuerURL returns the token issuer for the configured tenant.
func (s *AuthSettings) IssuerURL() string {
	return "https://" + s.Domain + "/"
}

// Validate checks the auth settings
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.CacheTTL < 0 || s.ClockSkew < 0 {
		return fmt.Errorf("cache ttl and clock skew must not be negative")
	}
	return nil
}
