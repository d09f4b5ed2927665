package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestLimiter_Allow_UnderCap(t *testing.T) {
	l := New(10*time.Minute, 3, slog.Default())

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
}

func TestLimiter_Allow_OverCap(t *testing.T) {
	l := New(10*time.Minute, 2, slog.Default())

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestLimiter_Allow_PerClient(t *testing.T) {
	l := New(10*time.Minute, 1, slog.Default())

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))

	// Другой клиент считается отдельно
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestLimiter_Allow_WindowReset(t *testing.T) {
	l := New(10*time.Minute, 1, slog.Default())

	current := time.Now()
	l.now = func() time.Time { return current }
	l.started = current

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))

	// На границе окна счётчики сбрасываются
	current = current.Add(10 * time.Minute)
	assert.True(t, l.Allow("1.2.3.4"))
}

func TestClientKey(t *testing.T) {
	assert.Equal(t, "1.2.3.4", clientKey("1.2.3.4:56789"))
	assert.Equal(t, "1.2.3.4", clientKey("1.2.3.4"))
}
