package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

const principalKey = "principal"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's Principal in the gin context.
func AuthMiddleware(verifier auth.TokenVerifier, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		principal, err := verifier.Verify(ctx.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			log.Warn("Rejected bearer token", "path", ctx.FullPath(), "error", err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid bearer token"})
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireAdmin lets the request through only for admin profiles.
func RequireAdmin(profileService profiles.ProfileService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := PrincipalFrom(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		profile, err := profileService.GetByID(ctx.Request.Context(), principal.Subject)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			respondError(ctx, log, err)
			return
		}
		if err != nil || !profile.IsAdmin() {
			log.Warn("Admin route refused", "path", ctx.FullPath(), "subject", principal.Subject)
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "admin role required"})
			return
		}

		ctx.Next()
	}
}

// PrincipalFrom returns the caller stored by AuthMiddleware.
func PrincipalFrom(ctx *gin.Context) (*auth.Principal, bool) {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*auth.Principal)
	return principal, ok && principal != nil
}

// mustPrincipal writes 401 and returns false when no principal is present.
func mustPrincipal(ctx *gin.Context) (*auth.Principal, bool) {
	principal, ok := PrincipalFrom(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
	}
	return principal, ok
}
