package client

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
	}

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) GetToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}
	return nil
}

func (a *App) ClearToken() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	a.httpClient.SetToken("")
	return nil
}

// Signup регистрирует пользователя и возвращает токен
func (a *App) Signup(ctx context.Context, email, password string) (string, error) {
	return a.httpClient.Signup(ctx, email, password)
}

// Login выполняет вход и возвращает токен
func (a *App) Login(ctx context.Context, email, password string) (string, error) {
	return a.httpClient.Login(ctx, email, password)
}

func (a *App) CreateNote(ctx context.Context, title, content string) (NoteView, error) {
	return a.httpClient.CreateNote(ctx, title, content)
}

func (a *App) ListNotes(ctx context.Context) ([]NoteView, error) {
	return a.httpClient.ListNotes(ctx)
}

func (a *App) GetNote(ctx context.Context, noteID string) (NoteView, error) {
	return a.httpClient.GetNote(ctx, noteID)
}

func (a *App) UpdateNote(ctx context.Context, noteID, title, content string) (NoteView, error) {
	return a.httpClient.UpdateNote(ctx, noteID, title, content)
}

func (a *App) DeleteNote(ctx context.Context, noteID string) error {
	return a.httpClient.DeleteNote(ctx, noteID)
}

func (a *App) SearchNotes(ctx context.Context, query string) ([]NoteView, error) {
	return a.httpClient.SearchNotes(ctx, query)
}

func (a *App) ShareNote(ctx context.Context, recipientID, noteID string) error {
	return a.httpClient.ShareNote(ctx, recipientID, noteID)
}
