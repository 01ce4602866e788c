//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/pkg/config"
	"fleet-workflow/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(uuid.New(), role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, user.RoleAdmin)
}

func (h *JWTHelper) TecnicoToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, user.RoleTecnico)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role user.Role) string {
	t.Helper()
	past := time.Now().Add(-2 * h.cfg.Duration)
	svc := jwt.NewService(h.cfg.Secret, h.cfg.Duration).WithClock(func() time.Time { return past })
	token, err := svc.GenerateToken(uuid.New(), role)
	require.NoError(t, err)
	return token
}
