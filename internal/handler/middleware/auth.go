package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"resource-scheduler/internal/handler/httperr"
	"resource-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxAgencyIDKey = "agency_id"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a bearer token and scopes the request to the token's agency.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}

		userID, agencyID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		SetPrincipal(c, userID, agencyID)
		c.Next()
	}
}

// SetPrincipal stores the authenticated identity on the request context.
func SetPrincipal(c *gin.Context, userID, agencyID uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxAgencyIDKey, agencyID)
	c.Set("jwt_claims", map[string]any{
		"user_id":   userID.String(),
		"agency_id": agencyID.String(),
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	resp := httperr.Response{Status: http.StatusUnauthorized}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return uuidFromContext(c, ctxUserIDKey)
}

func GetAgencyID(c *gin.Context) (uuid.UUID, bool) {
	return uuidFromContext(c, ctxAgencyIDKey)
}

func uuidFromContext(c *gin.Context, key string) (uuid.UUID, bool) {
	v, exists := c.Get(key)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
