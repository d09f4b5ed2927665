package note

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, userUUID, title, content string) (Note, error)
	List(ctx context.Context, userUUID string) ([]Note, error)
	Get(ctx context.Context, userUUID, noteUUID string) (Note, error)
	Update(ctx context.Context, userUUID, noteUUID, title, content string) (Note, error)
	Delete(ctx context.Context, userUUID, noteUUID string) error
	Search(ctx context.Context, userUUID, query string) ([]Note, error)
	Share(ctx context.Context, sharerUUID, recipientUUID, noteUUID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func (s *Service) Create(ctx context.Context, userUUID, title, content string) (Note, error) {
	if title == "" || content == "" {
		return Note{}, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	created, err := s.repo.CreateOwned(ctx, userUUID, Note{Title: title, Content: content})
	if err != nil {
		s.log.Error("failed to create note", "user_uuid", userUUID, "error", err)
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_uuid", created.UUID, "user_uuid", userUUID)
	return created, nil
}

func (s *Service) List(ctx context.Context, userUUID string) ([]Note, error) {
	notes, err := s.repo.List(ctx, userUUID)
	if err != nil {
		s.log.Error("failed to list notes", "user_uuid", userUUID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *Service) Get(ctx context.Context, userUUID, noteUUID string) (Note, error) {
	n, err := s.repo.Get(ctx, userUUID, noteUUID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to get note", "note_uuid", noteUUID, "user_uuid", userUUID, "error", err)
		return Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (s *Service) Update(ctx context.Context, userUUID, noteUUID, title, content string) (Note, error) {
	if title == "" || content == "" {
		return Note{}, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, userUUID, Note{UUID: noteUUID, Title: title, Content: content})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to update note", "note_uuid", noteUUID, "user_uuid", userUUID, "error", err)
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	s.log.Info("note updated", "note_uuid", noteUUID, "user_uuid", userUUID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userUUID, noteUUID string) error {
	err := s.repo.Delete(ctx, userUUID, noteUUID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete note", "note_uuid", noteUUID, "user_uuid", userUUID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_uuid", noteUUID, "user_uuid", userUUID)
	return nil
}

func (s *Service) Search(ctx context.Context, userUUID, query string) ([]Note, error) {
	notes, err := s.repo.Search(ctx, userUUID, query)
	if err != nil {
		s.log.Error("failed to search notes", "user_uuid", userUUID, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

// Share требует лишь существования заметки: членство шерящего не
// проверяется, как в исходной системе. Ужесточение записано открытым
// вопросом в DESIGN.md; sharerUUID принимается ради него и логов.
func (s *Service) Share(ctx context.Context, sharerUUID, recipientUUID, noteUUID string) error {
	err := s.repo.Share(ctx, recipientUUID, noteUUID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRecipientNotFound) {
			return err
		}
		s.log.Error("failed to share note",
			"note_uuid", noteUUID, "sharer_uuid", sharerUUID, "recipient_uuid", recipientUUID, "error", err)
		return fmt.Errorf("share note: %w", err)
	}

	s.log.Info("note shared", "note_uuid", noteUUID, "sharer_uuid", sharerUUID, "recipient_uuid", recipientUUID)
	return nil
}
