package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/logidash/internal/pkg/auth"
	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// TokenVerifier checks the bearer token of a mutating request.
type TokenVerifier interface {
	Verify(token string) error
}

// WriteGuard rejects requests whose bearer token the verifier does not accept.
func WriteGuard(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := verifier.Verify(extractToken(c))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, pkgAuth.ErrMissingToken), errors.Is(err, pkgAuth.ErrInvalidToken):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		default:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
