package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

const (
	defaultEmailClaim = "email"
	defaultNameClaim  = "name"
	defaultCacheTTL   = 5 * time.Minute
)

// tokenValidator is satisfied by *validator.Validator.
type tokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (interface{}, error)
}

// profileClaims captures every non-registered claim so that namespaced
// claim names (e.g. "https://smartfitter.app/email") can be configured.
type profileClaims map[string]any

// Validate satisfies validator.CustomClaims. Missing profile claims are not
// an error; the API falls back to the request body.
func (c *profileClaims) Validate(context.Context) error {
	return nil
}

func (c *profileClaims) stringClaim(name string) string {
	if c == nil {
		return ""
	}
	if v, ok := (*c)[name].(string); ok {
		return v
	}
	return ""
}

type auth0Verifier struct {
	validator  tokenValidator
	emailClaim string
	nameClaim  string
	logger     logger.Logger
}

// NewAuth0Verifier creates a TokenVerifier that checks RS256 signatures
// against the tenant's cached JWKS, plus issuer, audience and expiry.
func NewAuth0Verifier(settings *config.AuthSettings, logger logger.Logger) (TokenVerifier, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	issuerURL, err := url.Parse(settings.IssuerURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse issuer url: %w", err)
	}

	cacheTTL := settings.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}
	provider := jwks.NewCachingProvider(issuerURL, cacheTTL)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{settings.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &profileClaims{}
		}),
		validator.WithAllowedClockSkew(settings.ClockSkew),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	return newVerifier(jwtValidator, settings, logger), nil
}

func newVerifier(v tokenValidator, settings *config.AuthSettings, logger logger.Logger) *auth0Verifier {
	emailClaim := settings.EmailClaim
	if emailClaim == "" {
		emailClaim = defaultEmailClaim
	}
	nameClaim := settings.NameClaim
	if nameClaim == "" {
		nameClaim = defaultNameClaim
	}
	return &auth0Verifier{
		validator:  v,
		emailClaim: emailClaim,
		nameClaim:  nameClaim,
		logger:     logger,
	}
}

func (v *auth0Verifier) Verify(ctx context.Context, rawToken string) (*Principal, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthenticated)
	}

	result, err := v.validator.ValidateToken(ctx, rawToken)
	if err != nil {
		v.logger.Debug("Rejected bearer token", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	claims, ok := result.(*validator.ValidatedClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type %T", ErrUnauthenticated, result)
	}
	if claims.RegisteredClaims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrUnauthenticated)
	}

	custom, _ := claims.CustomClaims.(*profileClaims)
	return &Principal{
		Subject: claims.RegisteredClaims.Subject,
		Email:   custom.stringClaim(v.emailClaim),
		Name:    custom.stringClaim(v.nameClaim),
	}, nil
}
