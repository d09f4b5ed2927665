package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

const uniqueViolation = "23505"

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (uuid, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.UUID, u.Email, u.Password,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, user.ErrEmailTaken
		}
		r.log.Error("failed to create user", "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, uuid, email, password, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.UUID, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("find user by email: %w", err)
	}

	return u, nil
}
