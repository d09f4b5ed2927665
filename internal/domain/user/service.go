package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	SignUp(ctx context.Context, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
}

// Codec — обратимое кодирование паролей (см. internal/app/server/crypto).
type Codec interface {
	Encode(plaintext string) (string, error)
	Decode(encoded string) (string, error)
}

type Service struct {
	repo      Repository
	validator Validator
	codec     Codec
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, codec Codec, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		codec:     codec,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateSignUp(email, password); err != nil {
		s.log.Debug("signup validation failed", "email", email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	encoded, err := s.codec.Encode(password)
	if err != nil {
		return User{}, fmt.Errorf("encode password: %w", err)
	}

	created, err := s.repo.Create(ctx, User{
		UUID:     uuid.NewString(),
		Email:    email,
		Password: encoded,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, ErrEmailTaken
		}
		s.log.Error("failed to create user", "email", email, "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", "user_uuid", created.UUID)
	return created, nil
}

// Login сравнивает пароль через decode-and-compare. Отсутствие пользователя,
// битый шифртекст и несовпадение наружу неразличимы: всегда ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	stored, err := s.codec.Decode(u.Password)
	if err != nil {
		s.log.Error("stored password decode failed", "user_uuid", u.UUID, "error", err)
		return User{}, ErrInvalidCredentials
	}

	if stored != password {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
