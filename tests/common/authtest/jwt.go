//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"resource-scheduler/internal/pkg/config"
	"resource-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the external identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, agencyID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, agencyID)
	require.NoError(t, err)
	return token
}

// AgencyToken is a token for a fresh planner of agencyID.
func (h *JWTHelper) AgencyToken(t *testing.T, agencyID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), agencyID)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, agencyID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, agencyID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
