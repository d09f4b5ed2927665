package note

import "context"

type Repository interface {
	// CreateOwned в одной транзакции находит действующего пользователя,
	// создаёт заметку и членство с is_owner=true. Частичное состояние
	// (заметка без членства) зафиксировано быть не может.
	CreateOwned(ctx context.Context, userUUID string, n Note) (Note, error)

	// List возвращает все заметки, на которые у пользователя есть членство.
	List(ctx context.Context, userUUID string) ([]Note, error)

	// Get требует членства (любого) на заметку; иначе ErrNotFound.
	Get(ctx context.Context, userUUID, noteUUID string) (Note, error)

	// Update требует членства с is_owner=true; иначе ErrNotFound.
	Update(ctx context.Context, userUUID string, n Note) (Note, error)

	// Delete требует членства с is_owner=true; удаление каскадно
	// снимает все членства заметки.
	Delete(ctx context.Context, userUUID, noteUUID string) error

	// Search — регистронезависимый поиск подстроки по title и content
	// в пределах видимых пользователю заметок.
	Search(ctx context.Context, userUUID, query string) ([]Note, error)

	// Share добавляет членство получателя с is_owner=false.
	// Повторный шаринг — no-op.
	Share(ctx context.Context, recipientUUID, noteUUID string) error
}
