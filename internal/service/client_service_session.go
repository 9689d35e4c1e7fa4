package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/internal/utils"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type sessionManager struct {
	tracer

	adapter adapter.SerbleAdapter
	store   *store.SessionStore
	now     func() time.Time

	mu      sync.RWMutex
	session models.Session
}

func NewSessionManager(serbleAdapter adapter.SerbleAdapter, sessionStore *store.SessionStore, logger *logger.Logger) SessionManager {
	return &sessionManager{
		tracer:  newTracer(logger),
		adapter: serbleAdapter,
		store:   sessionStore,
		now:     time.Now,
	}
}

func (m *sessionManager) Get() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *sessionManager) Set(ctx context.Context, token string) error {
	if token == "" {
		return m.Clear(ctx)
	}

	m.install(token)
	if err := m.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}

func (m *sessionManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.session = models.Session{}
	m.mu.Unlock()
	m.adapter.SetToken("")

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing persisted session: %w", err)
	}
	return nil
}

func (m *sessionManager) Restore(ctx context.Context) models.Result[models.User] {
	ctx, log := m.begin(ctx)

	token, err := m.store.Token(ctx)
	if err != nil {
		return fail[models.User](log, "sessionManager.Restore", fmt.Errorf("error loading session: %w", err))
	}
	if token == "" {
		return models.Fail[models.User](noSession())
	}

	m.install(token)
	return m.Validate(ctx)
}

func (m *sessionManager) Validate(ctx context.Context) models.Result[models.User] {
	ctx, log := m.begin(ctx)

	session := m.Get()
	if !session.Valid(m.now()) {
		if session.Token != "" {
			log.Info().Str("func", "sessionManager.Validate").Msg("session token expired")
			m.clearQuietly(ctx, log)
		}
		return models.Fail[models.User](noSession())
	}

	user, err := m.adapter.GetAccount(ctx)
	if err != nil {
		if models.FlagOf(err) == models.FlagUnauthorized {
			m.clearQuietly(ctx, log)
		}
		return fail[models.User](log, "sessionManager.Validate", err)
	}
	return models.OK(user)
}

func (m *sessionManager) install(token string) {
	session := models.Session{Token: token}
	// opaque tokens simply carry no expiry
	if exp, err := utils.TokenExpiry(token); err == nil {
		session.ExpiresAt = exp
	}

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	m.adapter.SetToken(token)
}

func (m *sessionManager) clearQuietly(ctx context.Context, log *logger.Logger) {
	if err := m.Clear(ctx); err != nil {
		log.Err(err).Str("func", "sessionManager.clearQuietly").Msg("failed to clear session")
	}
}
