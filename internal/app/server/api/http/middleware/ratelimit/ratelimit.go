package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const throttledMessage = "Too many requests, please try again later"

// Limiter — фиксированное окно на клиента: счётчик обнуляется целиком
// на границе окна, внутри окна действует жёсткий потолок.
type Limiter struct {
	window time.Duration
	max    int
	log    *slog.Logger

	mu      sync.Mutex
	started time.Time
	counts  map[string]int
	now     func() time.Time
}

func New(window time.Duration, max int, log *slog.Logger) *Limiter {
	return &Limiter{
		window:  window,
		max:     max,
		log:     log.With("component", "rate_limiter"),
		started: time.Now(),
		counts:  make(map[string]int),
		now:     time.Now,
	}
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !l.Allow(clientKey(ctx.RemoteAddr())) {
			ctx.SetStatus(http.StatusTooManyRequests)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"message": throttledMessage,
			})
			return
		}
		next(ctx)
	}
}

// Allow регистрирует запрос клиента и отвечает, пролезает ли тот в окно.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.started) >= l.window {
		l.started = now
		l.counts = make(map[string]int)
	}

	l.counts[key]++
	if l.counts[key] > l.max {
		l.log.Debug("client throttled", "client", key)
		return false
	}
	return true
}

func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
