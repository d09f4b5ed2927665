package user

import "context"

type Repository interface {
	// Create сохраняет пользователя; занятый email — ErrEmailTaken.
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}
