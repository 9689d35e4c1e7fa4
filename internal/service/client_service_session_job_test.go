// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySessions считает вызовы Validate и позволяет задать текущий токен.
type spySessions struct {
	token     atomic.Value
	calls     atomic.Int64
	validated models.Result[models.User]
}

func newSpySessions(token string) *spySessions {
	s := &spySessions{validated: models.OK(models.User{})}
	s.token.Store(token)
	return s
}

func (s *spySessions) Get() models.Session {
	return models.Session{Token: s.token.Load().(string)}
}

func (s *spySessions) Set(_ context.Context, token string) error {
	s.token.Store(token)
	return nil
}

func (s *spySessions) Clear(_ context.Context) error {
	s.token.Store("")
	return nil
}

func (s *spySessions) Restore(ctx context.Context) models.Result[models.User] {
	return s.Validate(ctx)
}

func (s *spySessions) Validate(_ context.Context) models.Result[models.User] {
	s.calls.Add(1)
	return s.validated
}

// ── NewSessionWatchJob ───────────────────────────────────────────────────────

func TestNewSessionWatchJob_ReturnsInterface(t *testing.T) {
	job := NewSessionWatchJob(newSpySessions("tok"), logger.Nop())
	require.NotNil(t, job)

	// проверяем что возвращённый объект реализует SessionWatchJob
	var _ SessionWatchJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSessionWatchJob_Start_ValidatesSession(t *testing.T) {
	spy := newSpySessions("tok")
	job := NewSessionWatchJob(spy, logger.Nop())

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Validate должен быть вызван несколько раз, вызвано: %d", got)
}

func TestSessionWatchJob_SkipsWhenLoggedOut(t *testing.T) {
	spy := newSpySessions("")
	job := NewSessionWatchJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load(), "без сессии проверять нечего")
}

func TestSessionWatchJob_UnauthorizedDoesNotStopJob(t *testing.T) {
	spy := newSpySessions("tok")
	spy.validated = models.Fail[models.User](unauthorizedErr())
	job := NewSessionWatchJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSessionWatchJob_Stop_StopsGoroutine(t *testing.T) {
	spy := newSpySessions("tok")
	job := NewSessionWatchJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestSessionWatchJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSessionWatchJob(newSpySessions(""), logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionWatchJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSessionWatchJob(newSpySessions("tok"), logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionWatchJob_Start_DefaultInterval(t *testing.T) {
	spy := newSpySessions("tok")
	job := NewSessionWatchJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSessionWatchJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSessionWatchJob(newSpySessions("tok"), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}
