// Package jwt issues and verifies the HS256 bearer tokens carried by API and
// offline-sync callers.
package jwt

import (
	"errors"
	"time"

	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	issuer        string
	leeway        time.Duration
	clock         clock.Clock
}

type Option func(*Service)

// WithIssuer stamps and requires the iss claim.
func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(secretKey string, tokenDuration time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clock.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken issues a signed token for the offline client and for tests.
// Credential checks happen upstream of this service.
func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, parserOpts...)
	if err != nil {
		// jwt/v5 joins its sentinel errors
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.Mark(err, ErrExpiredToken)
		}
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
