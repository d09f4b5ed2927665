//регистрация и аутентификация пользователей;
//заметки: создание, чтение, обновление, удаление, поиск;
//выдача доступа к заметке другому пользователю.

//POST /signup        # Регистрация (публичный)
//POST /login         # Логин (публичный)
//GET  /note          # Список заметок (auth)
//GET  /note/{id}     # Получить заметку (auth)
//POST /note          # Создать заметку (auth)
//PUT  /note          # Обновить заметку (auth)
//DELETE /note/{id}   # Удалить заметку (auth)
//GET  /search?q=     # Поиск по заметкам (auth)
//POST /share         # Поделиться заметкой (auth)

package api

import (
	"fmt"

	accountAPI "notekeeper/internal/app/server/api/http/account"
	healthAPI "notekeeper/internal/app/server/api/http/health"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	"notekeeper/internal/app/server/api/http/middleware/ratelimit"
	noteAPI "notekeeper/internal/app/server/api/http/note"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/app/server/crypto"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/token"
	"notekeeper/internal/domain/user"
	"notekeeper/internal/infrastructure/storage/postgres"
	"notekeeper/internal/metrics"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Account *accountAPI.Handler
	Note    *noteAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Notekeeper API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h, err := handlers(cfg, storage, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	mux.Handle("/metrics", metrics.Handler())

	return mux, nil
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*Handlers, error) {
	codec, err := crypto.NewCodec(cfg.Crypto.Algorithm, cfg.Crypto.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("init codec: %w", err)
	}

	tokenService := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	authMW := auth.New(tokenService, log)
	loggerMW := logger.New(log)
	limiterMW := ratelimit.New(cfg.RateLimit.Window, cfg.RateLimit.Max, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metrics.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), codec, log)
	middlewares.Add(limiterMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metrics.Middleware())
	accountHandler := accountAPI.NewHandler(userService, tokenService, log, middlewares.GetAllAndClear())

	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)
	noteService := note.NewService(noteRepo, log)
	middlewares.Add(limiterMW.Middleware())
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metrics.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Account: accountHandler,
		Note:    noteHandler,
	}, nil
}
