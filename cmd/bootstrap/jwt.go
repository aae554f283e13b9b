package bootstrap

import (
	"fmt"
	"time"

	"resource-scheduler/internal/pkg/config"
	"resource-scheduler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	opts := []jwt.Option{jwt.WithLeeway(cfg.JWT.Leeway)}
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	return jwt.NewService(cfg.JWT.Secret, duration, opts...), nil
}
