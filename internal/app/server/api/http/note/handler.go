package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.shareOp(), h.share)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.List(ctx, identity.UserID)
	if err != nil {
		return nil, noteError(err)
	}

	return &listOutput{Body: toResponses(notes)}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Get(ctx, identity.UserID, input.ID)
	if err != nil {
		return nil, noteError(err)
	}

	return &getOutput{Body: toResponse(n)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Create(ctx, identity.UserID, input.Body.Title, input.Body.Content)
	if err != nil {
		return nil, noteError(err)
	}

	return &createOutput{Body: toResponse(n)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Update(ctx, identity.UserID, input.Body.NoteID, input.Body.Title, input.Body.Content)
	if err != nil {
		return nil, noteError(err)
	}

	return &updateOutput{Body: toResponse(n)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, identity.UserID, input.ID); err != nil {
		return nil, noteError(err)
	}

	return &deleteOutput{
		Body: messageResponse{Message: "Note deleted successfully"},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.Search(ctx, identity.UserID, input.Query)
	if err != nil {
		return nil, noteError(err)
	}

	return &searchOutput{Body: toResponses(notes)}, nil
}

func (h *Handler) share(ctx context.Context, input *shareInput) (*shareOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Share(ctx, identity.UserID, input.Body.RecipientID, input.Body.NoteID)
	if err != nil {
		return nil, noteError(err)
	}

	return &shareOutput{
		Body: messageResponse{Message: "Note shared successfully"},
	}, nil
}

// noteError сводит все отказы на заметочных ручках к 404:
// провал проверки членства и настоящее отсутствие снаружи неотличимы,
// а неожиданные ошибки тоже прячутся за 404 вместо 500.
func noteError(err error) error {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return huma.Error404NotFound("Note not found")
	case errors.Is(err, note.ErrRecipientNotFound):
		return huma.Error404NotFound("User not found")
	default:
		return huma.Error404NotFound("Server Error")
	}
}

func toResponse(n note.Note) noteResponse {
	return noteResponse{
		NoteID:  n.UUID,
		Title:   n.Title,
		Content: n.Content,
	}
}

func toResponses(notes []note.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toResponse(n))
	}
	return out
}
