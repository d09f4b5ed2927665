package account

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/token"
	"notekeeper/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	tokens     token.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, tokens token.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) signup(ctx context.Context, input *signupInput) (*signupOutput, error) {
	u, err := h.service.SignUp(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.Error400BadRequest(signupMessage(err))
	}

	t, err := h.tokens.Issue(u.UUID, u.Email)
	if err != nil {
		h.log.Error("failed to issue token after signup", "user_uuid", u.UUID, "error", err)
		return nil, huma.Error400BadRequest("User not created")
	}

	return &signupOutput{
		Body: TokenResponse{
			Token:   t,
			Message: "User created successfully",
		},
	}, nil
}

// login не различает «нет такого пользователя» и «неверный пароль»:
// наружу всегда уходит один и тот же ответ.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid credentials")
	}

	t, err := h.tokens.Issue(u.UUID, u.Email)
	if err != nil {
		h.log.Error("failed to issue token after login", "user_uuid", u.UUID, "error", err)
		return nil, huma.Error400BadRequest("Invalid credentials")
	}

	return &loginOutput{
		Body: TokenResponse{
			Token:   t,
			Message: "User logged in successfully",
		},
	}, nil
}

// signupMessage отдаёт пользователю 1:1 сообщение валидации или уникальности,
// всё остальное прячет за общим текстом.
func signupMessage(err error) string {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return "The email address is already in use."
	case errors.Is(err, user.ErrInvalidInput):
		// Сентинель — служебный, клиент видит только текст валидатора
		return strings.TrimPrefix(err.Error(), user.ErrInvalidInput.Error()+": ")
	default:
		return "User not created"
	}
}
