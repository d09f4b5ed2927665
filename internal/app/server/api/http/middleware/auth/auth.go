package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/token"
)

type Auth struct {
	tokens token.Servicer
	log    *slog.Logger
}

func New(tokens token.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With("component", "auth_middleware"),
	}
}

type contextKey string

const identityKey contextKey = "identity"

// Middleware проверяет bearer-токен на каждом запросе: нет токена — 401,
// плохой или истёкший — 403 без деталей.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			writeError(ctx, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		identity, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			writeError(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		newCtx := WithIdentity(ctx.Context(), identity)
		next(huma.WithContext(ctx, newCtx))
	}
}

func writeError(ctx huma.Context, status int, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": message,
	})
}

func WithIdentity(ctx context.Context, identity token.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentity(ctx context.Context) (token.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(token.Identity)
	return identity, ok
}
