package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Notekeeper-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Signup(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, "POST", "/signup", CredentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var signupResp tokenResponse
	if err := h.parseResponse(resp, &signupResp); err != nil {
		return "", err
	}

	h.SetToken(signupResp.Token)
	return signupResp.Token, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, "POST", "/login", CredentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp tokenResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) CreateNote(ctx context.Context, title, content string) (NoteView, error) {
	resp, err := h.doRequest(ctx, "POST", "/note", noteRequest{Title: title, Content: content})
	if err != nil {
		return NoteView{}, err
	}

	var n NoteView
	if err := h.parseResponse(resp, &n); err != nil {
		return NoteView{}, err
	}
	return n, nil
}

func (h *httpClient) ListNotes(ctx context.Context) ([]NoteView, error) {
	resp, err := h.doRequest(ctx, "GET", "/note", nil)
	if err != nil {
		return nil, err
	}

	var notes []NoteView
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpClient) GetNote(ctx context.Context, noteID string) (NoteView, error) {
	resp, err := h.doRequest(ctx, "GET", "/note/"+noteID, nil)
	if err != nil {
		return NoteView{}, err
	}

	var n NoteView
	if err := h.parseResponse(resp, &n); err != nil {
		return NoteView{}, err
	}
	return n, nil
}

func (h *httpClient) UpdateNote(ctx context.Context, noteID, title, content string) (NoteView, error) {
	resp, err := h.doRequest(ctx, "PUT", "/note", noteUpdateRequest{
		NoteID:  noteID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return NoteView{}, err
	}

	var n NoteView
	if err := h.parseResponse(resp, &n); err != nil {
		return NoteView{}, err
	}
	return n, nil
}

func (h *httpClient) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/note/"+noteID, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) SearchNotes(ctx context.Context, query string) ([]NoteView, error) {
	resp, err := h.doRequest(ctx, "GET", "/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var notes []NoteView
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpClient) ShareNote(ctx context.Context, recipientID, noteID string) error {
	resp, err := h.doRequest(ctx, "POST", "/share", shareRequest{
		RecipientID: recipientID,
		NoteID:      noteID,
	})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string `json:"error"`
			Detail  string `json:"detail"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			switch {
			case errResp.Error != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			case errResp.Detail != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			case errResp.Message != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Message)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
