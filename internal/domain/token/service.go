package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

// ErrInvalidToken — единый ответ на плохую подпись, истёкший срок и мусор:
// наружу различие не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

type Servicer interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (Identity, error)
}

// Identity — личность из проверенного токена. UserID — внешний UUID
// пользователя, внутренние числовые id в токены не попадают.
type Identity struct {
	UserID string
	Email  string
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(secret string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		log:    log.With("component", "token_service"),
	}
}

func (s *Service) Issue(userID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(tokenString string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		s.log.Debug("token verification failed", "error", err)
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID: c.Subject,
		Email:  c.Email,
	}, nil
}
