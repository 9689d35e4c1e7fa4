package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/mock"
	"github.com/MKhiriev/go-serble-keeper/internal/scope"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAppSvc(t *testing.T, ctrl *gomock.Controller) (AppService, *mock.MockSerbleAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	return NewAppService(mockAdapter, scope.Default(), logger.Nop()), mockAdapter
}

// ── Authorize ────────────────────────────────────────────────────────────────

func TestAppService_Authorize_EncodesKnownScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	// неизвестный scope отбрасывается до кодирования
	mockAdapter.EXPECT().AuthorizeApp(gomock.Any(), "app-1", "0010100").Return("auth-code", nil)

	res := svc.Authorize(context.Background(), "app-1", []string{"payment_info", "bogus", "user_info"})
	require.True(t, res.Success)
	assert.Equal(t, "auth-code", res.Value)
}

func TestAppService_Authorize_NoScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	mockAdapter.EXPECT().AuthorizeApp(gomock.Any(), "app-1", "0000000").Return("code", nil)

	res := svc.Authorize(context.Background(), "app-1", nil)
	assert.True(t, res.Success)
}

func TestAppService_Authorize_BadApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	badApp := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagBadApp, Status: 400}
	mockAdapter.EXPECT().AuthorizeApp(gomock.Any(), "nope", gomock.Any()).Return("", badApp)

	res := svc.Authorize(context.Background(), "nope", []string{"user_info"})
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagBadApp, res.Flag)
	assert.Equal(t, 400, res.Status)
}

func TestAppService_Authorize_EmptyAppID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAppSvc(t, ctrl)

	res := svc.Authorize(context.Background(), "", []string{"user_info"})
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagBadApp, res.Flag)
	assert.ErrorIs(t, res.Err, ErrNoAppID)
}

// ── Deauthorize / PublicApp ──────────────────────────────────────────────────

func TestAppService_Deauthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	mockAdapter.EXPECT().DeauthorizeApp(gomock.Any(), "app-1").Return(nil)

	assert.True(t, svc.Deauthorize(context.Background(), "app-1").Success)
}

func TestAppService_PublicApp_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	notFound := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagNotFound, Status: 404}
	mockAdapter.EXPECT().GetPublicApp(gomock.Any(), "gone").Return(models.PublicApp{}, notFound)

	res := svc.PublicApp(context.Background(), "gone")
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagNotFound, res.Flag)
}

func TestAppService_PublicApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	app := models.PublicApp{ID: "app-1", Name: "Demo"}
	mockAdapter.EXPECT().GetPublicApp(gomock.Any(), "app-1").Return(app, nil)

	res := svc.PublicApp(context.Background(), "app-1")
	require.True(t, res.Success)
	assert.Equal(t, app, res.Value)
}

// ── Scopes ───────────────────────────────────────────────────────────────────

func TestAppService_DescribeScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAppSvc(t, ctrl)

	defs := svc.DescribeScopes("0110")
	require.Len(t, defs, 2)
	assert.Equal(t, "file_host", defs[0].ID)
	assert.Equal(t, "user_info", defs[1].ID)
	assert.Equal(t, "Account Information", defs[1].DisplayName)

	assert.Empty(t, svc.DescribeScopes(""))
	assert.Len(t, svc.Scopes(), scope.Default().Len())
}

// ── Developer apps ───────────────────────────────────────────────────────────

func TestAppService_OwnedApps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	apps := []models.OAuthApp{{ID: "a1", Name: "One"}}
	mockAdapter.EXPECT().ListOAuthApps(gomock.Any()).Return(apps, nil)

	res := svc.OwnedApps(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, apps, res.Value)
}

func TestAppService_OwnedApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	mockAdapter.EXPECT().GetOAuthApp(gomock.Any(), "a1").Return(models.OAuthApp{ID: "a1", ClientSecret: "s"}, nil)

	res := svc.OwnedApp(context.Background(), "a1")
	require.True(t, res.Success)
	assert.Equal(t, "s", res.Value.ClientSecret)

	res = svc.OwnedApp(context.Background(), "")
	assert.Equal(t, models.FlagBadApp, res.Flag)
	assert.ErrorIs(t, res.Err, ErrNoAppID)
}

func TestAppService_CreateApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	want := models.OAuthAppDraft{Name: "Demo", Description: "d", RedirectURI: "https://demo.example/cb"}
	mockAdapter.EXPECT().CreateOAuthApp(gomock.Any(), want).Return(models.OAuthApp{ID: "a1", Name: "Demo"}, nil)

	res := svc.CreateApp(context.Background(), models.OAuthAppDraft{Name: " Demo ", Description: "d", RedirectURI: " https://demo.example/cb"})
	require.True(t, res.Success)
	assert.Equal(t, "a1", res.Value.ID)
}

func TestAppService_CreateApp_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.OAuthAppDraft
		err   error
	}{
		{"no name", models.OAuthAppDraft{Name: "  ", RedirectURI: "https://x.example"}, ErrNoAppName},
		{"relative uri", models.OAuthAppDraft{Name: "x", RedirectURI: "/callback"}, ErrBadRedirectURI},
		{"no uri", models.OAuthAppDraft{Name: "x"}, ErrBadRedirectURI},
		{"ftp uri", models.OAuthAppDraft{Name: "x", RedirectURI: "ftp://x.example"}, ErrBadRedirectURI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAppSvc(t, ctrl)

			// до адаптера запрос не доходит
			res := svc.CreateApp(context.Background(), tt.draft)
			assert.False(t, res.Success)
			assert.Equal(t, models.FlagBadField, res.Flag)
			assert.Equal(t, models.KindInvalidInput, models.KindOf(res.Err))
			assert.ErrorIs(t, res.Err, tt.err)
		})
	}
}

func TestAppService_EditApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	mockAdapter.EXPECT().
		EditOAuthApp(gomock.Any(), "a1", []models.AppEdit{{Field: "description", NewValue: "new"}}).
		Return(models.OAuthApp{ID: "a1", Description: "new"}, nil)

	res := svc.EditApp(context.Background(), "a1", []models.AppEdit{
		{Field: " description ", NewValue: "new"},
		{Field: "", NewValue: "ignored"},
	})
	require.True(t, res.Success)
	assert.Equal(t, "new", res.Value.Description)
}

func TestAppService_EditApp_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAppSvc(t, ctrl)
	ctx := context.Background()

	res := svc.EditApp(ctx, "a1", nil)
	assert.Equal(t, models.FlagNoEdits, res.Flag)

	res = svc.EditApp(ctx, "a1", []models.AppEdit{{Field: "name", NewValue: " "}})
	assert.ErrorIs(t, res.Err, ErrNoAppName)

	res = svc.EditApp(ctx, "a1", []models.AppEdit{{Field: "redirectUri", NewValue: "not a url"}})
	assert.ErrorIs(t, res.Err, ErrBadRedirectURI)

	res = svc.EditApp(ctx, "", []models.AppEdit{{Field: "name", NewValue: "x"}})
	assert.ErrorIs(t, res.Err, ErrNoAppID)
}

func TestAppService_DeleteApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAppSvc(t, ctrl)

	mockAdapter.EXPECT().DeleteOAuthApp(gomock.Any(), "a1").Return(nil)
	assert.True(t, svc.DeleteApp(context.Background(), "a1").Success)

	forbidden := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagBadApp, Status: 403}
	mockAdapter.EXPECT().DeleteOAuthApp(gomock.Any(), "foreign").Return(forbidden)
	res := svc.DeleteApp(context.Background(), "foreign")
	assert.Equal(t, models.FlagBadApp, res.Flag)
	assert.Equal(t, 403, res.Status)
}
