package usecase

import (
	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, err
	}

	return user.Principal{UserID: claims.UserID, Role: role}, nil
}
