package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/mock"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionManager: менеджер сессий поверх in-memory хранилища
func newTestSessionManager(t *testing.T, ctrl *gomock.Controller) (*sessionManager, *mock.MockSerbleAdapter, *store.SessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	sessions := store.NewSessionStore(store.NewMemoryKeyValueStorage())

	m := NewSessionManager(mockAdapter, sessions, logger.Nop()).(*sessionManager)
	return m, mockAdapter, sessions
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func unauthorizedErr() error {
	return &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagUnauthorized, Status: 401}
}

// ── Set / Get / Clear ────────────────────────────────────────────────────────

func TestSessionManager_Set_InstallsEverywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, sessions := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("opaque-token")

	require.NoError(t, m.Set(ctx, "opaque-token"))

	assert.Equal(t, "opaque-token", m.Get().Token)
	assert.True(t, m.Get().ExpiresAt.IsZero(), "у непрозрачного токена нет срока действия")

	persisted, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", persisted)
}

func TestSessionManager_Set_ReadsJWTExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _ := newTestSessionManager(t, ctrl)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)
	mockAdapter.EXPECT().SetToken(token)

	require.NoError(t, m.Set(context.Background(), token))
	assert.True(t, exp.Equal(m.Get().ExpiresAt))
}

func TestSessionManager_Set_EmptyTokenClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, sessions := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().SetToken(""),
	)

	require.NoError(t, m.Set(ctx, "tok"))
	require.NoError(t, m.Set(ctx, ""))

	assert.Equal(t, models.Session{}, m.Get())
	persisted, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestSessionManager_Set_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	mockKV := mock.NewMockKeyValueStorage(ctrl)
	m := NewSessionManager(mockAdapter, store.NewSessionStore(mockKV), logger.Nop())

	mockAdapter.EXPECT().SetToken("tok")
	mockKV.EXPECT().Set(gomock.Any(), store.SessionTokenKey, "tok").Return(errors.New("disk full"))

	err := m.Set(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSessionManager_Restore_NoPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestSessionManager(t, ctrl)

	res := m.Restore(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagUnauthorized, res.Flag)
	assert.ErrorIs(t, res.Err, ErrNoSession)
}

func TestSessionManager_Restore_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, sessions := newTestSessionManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.SetToken(ctx, "persisted"))

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("persisted"),
		mockAdapter.EXPECT().GetAccount(gomock.Any()).Return(models.User{ID: "u1", Username: "alice"}, nil),
	)

	res := m.Restore(ctx)
	require.True(t, res.Success)
	assert.Equal(t, "alice", res.Value.Username)
	assert.Equal(t, "persisted", m.Get().Token)
}

func TestSessionManager_Restore_UnauthorizedClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, sessions := newTestSessionManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.SetToken(ctx, "stale"))

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("stale"),
		mockAdapter.EXPECT().GetAccount(gomock.Any()).Return(models.User{}, unauthorizedErr()),
		mockAdapter.EXPECT().SetToken(""),
	)

	res := m.Restore(ctx)
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagUnauthorized, res.Flag)
	assert.Equal(t, 401, res.Status)

	assert.Empty(t, m.Get().Token)
	persisted, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted, "протухший токен должен быть удалён с диска")
}

func TestSessionManager_Restore_NetworkErrorKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, sessions := newTestSessionManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, sessions.SetToken(ctx, "tok"))

	netErr := &models.Error{Kind: models.KindNetwork, Flag: models.FlagNetwork}
	mockAdapter.EXPECT().SetToken("tok")
	mockAdapter.EXPECT().GetAccount(gomock.Any()).Return(models.User{}, netErr)

	res := m.Restore(ctx)
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagNetwork, res.Flag)
	// сеть недоступна: это не повод разлогинивать пользователя
	assert.Equal(t, "tok", m.Get().Token)
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestSessionManager_Validate_ExpiredJWTClearsWithoutRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, time.Now().Add(time.Hour))
	mockAdapter.EXPECT().SetToken(token)
	require.NoError(t, m.Set(ctx, token))

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	mockAdapter.EXPECT().SetToken("")
	// GetAccount не ожидается: gomock упадёт, если он будет вызван

	res := m.Validate(ctx)
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagUnauthorized, res.Flag)
	assert.Empty(t, m.Get().Token)
}

func TestSessionManager_Validate_LoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestSessionManager(t, ctrl)

	res := m.Validate(context.Background())
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrNoSession)
}
