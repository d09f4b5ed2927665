package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

// CreateOwned: поиск пользователя, вставка заметки и владельческого членства
// идут в одной транзакции — либо фиксируются все три шага, либо ни одного.
func (r *NoteRepository) CreateOwned(ctx context.Context, userUUID string, n note.Note) (note.Note, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return note.Note{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE uuid = $1`, userUUID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		return note.Note{}, fmt.Errorf("find acting user: %w", err)
	}

	n.UUID = uuid.NewString()
	err = tx.QueryRow(ctx,
		`INSERT INTO notes (uuid, title, content) VALUES ($1, $2, $3) RETURNING id`,
		n.UUID, n.Title, n.Content,
	).Scan(&n.ID)
	if err != nil {
		return note.Note{}, fmt.Errorf("insert note: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_notes (user_id, note_id, is_owner) VALUES ($1, $2, TRUE)`,
		userID, n.ID,
	)
	if err != nil {
		return note.Note{}, fmt.Errorf("insert membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return note.Note{}, fmt.Errorf("commit tx: %w", err)
	}

	return n, nil
}

func (r *NoteRepository) List(ctx context.Context, userUUID string) ([]note.Note, error) {
	const query = `
		SELECT n.id, n.uuid, n.title, n.content
		FROM notes n
		JOIN user_notes un ON un.note_id = n.id
		JOIN users u ON u.id = un.user_id
		WHERE u.uuid = $1
		ORDER BY n.id`

	rows, err := r.pool.Query(ctx, query, userUUID)
	if err != nil {
		r.log.Error("failed to list notes", "user_uuid", userUUID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *NoteRepository) Get(ctx context.Context, userUUID, noteUUID string) (note.Note, error) {
	const query = `
		SELECT n.id, n.uuid, n.title, n.content
		FROM notes n
		JOIN user_notes un ON un.note_id = n.id
		JOIN users u ON u.id = un.user_id
		WHERE n.uuid = $1 AND u.uuid = $2`

	var n note.Note
	err := r.pool.QueryRow(ctx, query, noteUUID, userUUID).
		Scan(&n.ID, &n.UUID, &n.Title, &n.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_uuid", noteUUID, "user_uuid", userUUID, "error", err)
		return note.Note{}, fmt.Errorf("get note: %w", err)
	}

	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, userUUID string, n note.Note) (note.Note, error) {
	const query = `
		UPDATE notes AS n
		SET title = $1, content = $2
		FROM user_notes un
		JOIN users u ON u.id = un.user_id
		WHERE un.note_id = n.id AND n.uuid = $3 AND u.uuid = $4 AND un.is_owner
		RETURNING n.id, n.uuid, n.title, n.content`

	var updated note.Note
	err := r.pool.QueryRow(ctx, query, n.Title, n.Content, n.UUID, userUUID).
		Scan(&updated.ID, &updated.UUID, &updated.Title, &updated.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to update note", "note_uuid", n.UUID, "user_uuid", userUUID, "error", err)
		return note.Note{}, fmt.Errorf("update note: %w", err)
	}

	return updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, userUUID, noteUUID string) error {
	const query = `
		DELETE FROM notes AS n
		USING user_notes un, users u
		WHERE un.note_id = n.id AND un.user_id = u.id
		  AND n.uuid = $1 AND u.uuid = $2 AND un.is_owner`

	result, err := r.pool.Exec(ctx, query, noteUUID, userUUID)
	if err != nil {
		r.log.Error("failed to delete note", "note_uuid", noteUUID, "user_uuid", userUUID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) Search(ctx context.Context, userUUID, query string) ([]note.Note, error) {
	pattern := "%" + query + "%"

	builder := squirrel.
		Select("n.id", "n.uuid", "n.title", "n.content").
		From("notes n").
		Join("user_notes un ON un.note_id = n.id").
		Join("users u ON u.id = un.user_id").
		Where(squirrel.Eq{"u.uuid": userUUID}).
		Where(squirrel.Or{
			squirrel.ILike{"n.title": pattern},
			squirrel.ILike{"n.content": pattern},
		}).
		OrderBy("n.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("failed to search notes", "user_uuid", userUUID, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// Share идемпотентен: повторная выдача доступа тому же получателю — no-op.
func (r *NoteRepository) Share(ctx context.Context, recipientUUID, noteUUID string) error {
	var noteID int
	err := r.pool.QueryRow(ctx, `SELECT id FROM notes WHERE uuid = $1`, noteUUID).Scan(&noteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.ErrNotFound
		}
		return fmt.Errorf("find note: %w", err)
	}

	var recipientID int
	err = r.pool.QueryRow(ctx, `SELECT id FROM users WHERE uuid = $1`, recipientUUID).Scan(&recipientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.ErrRecipientNotFound
		}
		return fmt.Errorf("find recipient: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO user_notes (user_id, note_id, is_owner)
		 VALUES ($1, $2, FALSE)
		 ON CONFLICT (user_id, note_id) DO NOTHING`,
		recipientID, noteID,
	)
	if err != nil {
		r.log.Error("failed to share note", "note_uuid", noteUUID, "recipient_uuid", recipientUUID, "error", err)
		return fmt.Errorf("share note: %w", err)
	}

	return nil
}

func scanNotes(rows pgx.Rows) ([]note.Note, error) {
	notes := make([]note.Note, 0)
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.UUID, &n.Title, &n.Content); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
