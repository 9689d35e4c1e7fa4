package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/mock"
	"github.com/MKhiriev/go-serble-keeper/internal/utils"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc: хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockSerbleAdapter, *mock.MockSessionManager) {
	t.Helper()
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	mockSessions := mock.NewMockSessionManager(ctrl)

	svc := NewAuthService(mockAdapter, mockSessions, logger.Nop()).(*authService)
	return svc, mockAdapter, mockSessions
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw").
			Return(models.LoginResult{Token: "tok"}, nil),
		mockSessions.EXPECT().Set(gomock.Any(), "tok").Return(nil),
	)

	res := svc.Login(context.Background(), "alice", "pw")
	require.True(t, res.Success)
	assert.Equal(t, "tok", res.Value.Token)
	assert.False(t, res.Value.MFARequired)
}

func TestAuthService_Login_MFARequired_DoesNotInstallSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	// mockSessions.Set не ожидается: сессия ставится только после TOTP
	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw").
		Return(models.LoginResult{MFARequired: true, MFAToken: "mfa"}, nil)

	res := svc.Login(context.Background(), "alice", "pw")
	require.True(t, res.Success)
	assert.True(t, res.Value.MFARequired)
	assert.Equal(t, "mfa", res.Value.MFAToken)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	for _, tc := range []struct{ user, pass string }{{"", "pw"}, {"alice", ""}, {"", ""}} {
		res := svc.Login(context.Background(), tc.user, tc.pass)
		assert.False(t, res.Success)
		assert.Equal(t, models.FlagInvalidCredentials, res.Flag)
		assert.Equal(t, models.KindInvalidInput, models.KindOf(res.Err))
	}
}

func TestAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	rejected := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagInvalidCredentials, Status: 401}
	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(models.LoginResult{}, rejected)

	res := svc.Login(context.Background(), "alice", "wrong")
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagInvalidCredentials, res.Flag)
	assert.Equal(t, 401, res.Status)
}

func TestAuthService_Login_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw").Return(models.LoginResult{}, nil)

	res := svc.Login(context.Background(), "alice", "pw")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrEmptyToken)
}

func TestAuthService_Login_SessionStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw").Return(models.LoginResult{Token: "tok"}, nil)
	mockSessions.EXPECT().Set(gomock.Any(), "tok").Return(errors.New("disk full"))

	res := svc.Login(context.Background(), "alice", "pw")
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagUnknown, res.Flag)
}

func TestAuthService_Login_ForwardsTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), "alice", "pw").DoAndReturn(
		func(ctx context.Context, _, _ string) (models.LoginResult, error) {
			// trace id должен попасть в контекст до обращения к адаптеру
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, traceID)
			return models.LoginResult{Token: "tok"}, nil
		},
	)
	mockSessions.EXPECT().Set(gomock.Any(), "tok").Return(nil)

	svc.Login(context.Background(), "alice", "pw")
}

// ── SubmitTOTP ───────────────────────────────────────────────────────────────

func TestAuthService_SubmitTOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().SubmitTOTP(gomock.Any(), "mfa", "123456").
			Return(models.LoginResult{Token: "tok"}, nil),
		mockSessions.EXPECT().Set(gomock.Any(), "tok").Return(nil),
	)

	res := svc.SubmitTOTP(context.Background(), "mfa", "123456")
	require.True(t, res.Success)
	assert.Equal(t, "tok", res.Value.Token)
}

func TestAuthService_SubmitTOTP_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	res := svc.SubmitTOTP(context.Background(), "mfa", "")
	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrEmptyTOTP)
}

func TestAuthService_SubmitTOTP_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	rejected := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagInvalidCredentials, Status: 400}
	mockAdapter.EXPECT().SubmitTOTP(gomock.Any(), "mfa", "000000").Return(models.LoginResult{}, rejected)

	res := svc.SubmitTOTP(context.Background(), "mfa", "000000")
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagInvalidCredentials, res.Flag)
}

// ── Logout / CurrentUser ─────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestAuthSvc(t, ctrl)

	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_Logout_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestAuthSvc(t, ctrl)

	mockSessions.EXPECT().Clear(gomock.Any()).Return(errors.New("boom"))
	assert.Error(t, svc.Logout(context.Background()))
}

func TestAuthService_CurrentUser_DelegatesToSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestAuthSvc(t, ctrl)

	mockSessions.EXPECT().Validate(gomock.Any()).Return(models.OK(models.User{Username: "alice"}))

	res := svc.CurrentUser(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, "alice", res.Value.Username)
}
