package user

import "time"

type User struct {
	ID        int       // внутренний id, наружу не отдаётся
	UUID      string    // внешний идентификатор
	Email     string
	Password  string // закодированный кодеком, не plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}
