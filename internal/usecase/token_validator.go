package usecase

import (
	"resource-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the planner and agency it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (userID, agencyID uuid.UUID, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return claims.UserID, claims.AgencyID, nil
}
