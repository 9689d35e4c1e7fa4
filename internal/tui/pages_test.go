package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/internal/mock"
	"github.com/MKhiriev/go-serble-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── Notes ──

func TestNotesModel_EnterOpensSelectedNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewNotesModel(context.Background(), vault)

	m.Update(notesLoadedMsg{res: models.OK([]models.Note{{ID: "a"}, {ID: "b", Name: "second"}})})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageNote, Payload: openNoteMsg{noteID: "b"}}, cmd())
}

func TestNotesModel_DeleteAsksForConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewNotesModel(context.Background(), vault)
	m.Update(notesLoadedMsg{res: models.OK([]models.Note{{ID: "a", Name: "first"}})})

	m.Update(keyRunes("d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, "first", m.confirm.message)

	vault.EXPECT().Delete(gomock.Any(), "a").Return(models.OK(struct{}{}))
	_, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.Equal(t, noteDeletedMsg{res: models.OK(struct{}{})}, cmd())
}

// ── Note ──

func TestNoteModel_AsksPasswordWhenNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewNoteModel(context.Background(), vault)

	vault.EXPECT().CachedPassword(gomock.Any(), "n1").Return("", false)
	m.Update(openNoteMsg{noteID: "n1"})
	assert.Equal(t, notePhasePassword, m.phase)
}

func TestNoteModel_CachedPasswordOpensDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewNoteModel(context.Background(), vault)

	vault.EXPECT().CachedPassword(gomock.Any(), "n1").Return("pw", true)
	vault.EXPECT().Open(gomock.Any(), "n1", "", false).Return(models.OK("secret text"))

	_, cmd := m.Update(openNoteMsg{noteID: "n1"})
	assert.Equal(t, notePhaseLoading, m.phase)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, notePhaseEdit, m.phase)
	assert.Equal(t, "secret text", m.editor.Value())
}

func TestNoteModel_StaleCacheFallsBackToPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	m := NewNoteModel(context.Background(), vault)

	vault.EXPECT().CachedPassword(gomock.Any(), "n1").Return("pw", true)
	m.Update(openNoteMsg{noteID: "n1"})

	m.Update(noteOpenedMsg{res: models.Result[string]{Err: errPasswordRequired()}})
	assert.Equal(t, notePhasePassword, m.phase)
	assert.Empty(t, m.errMsg)

	m.Update(noteOpenedMsg{res: models.OK("secret text")})
	assert.Equal(t, notePhaseEdit, m.phase)
	assert.Equal(t, "secret text", m.editor.Value())
}

func TestNoteModel_EscDropsPlaintext(t *testing.T) {
	m := NewNoteModel(context.Background(), mock.NewMockVaultService(gomock.NewController(t)))
	m.Update(noteOpenedMsg{res: models.OK("secret text")})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, m.editor.Value())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageNotes}, cmd())
}

// ── Authorize ──

func TestAuthorizeModel_SelectedIDsKeepTableOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mock.NewMockAppService(ctrl)
	apps.EXPECT().Scopes().Return([]models.ScopeDefinition{{ID: "user_info"}, {ID: "file_host"}, {ID: "vault"}})

	m := NewAuthorizeModel(context.Background(), apps)
	m.Init()
	m.Update(publicAppMsg{res: models.OK(models.PublicApp{ID: "app-1", Name: "App"})})
	require.Equal(t, authorizeStepScopes, m.step)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	assert.Equal(t, []string{"user_info", "vault"}, m.selectedIDs())

	apps.EXPECT().Authorize(gomock.Any(), "app-1", []string{"user_info", "vault"}).Return(models.OK("code-123"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.Equal(t, authorizeStepDone, m.step)
	assert.Equal(t, "code-123", m.code)
}

// ── Passkeys ──

func TestPasskeysModel_CancelledRegistrationIsNotAnError(t *testing.T) {
	m := NewPasskeysModel(context.Background(), mock.NewMockPasskeyService(gomock.NewController(t)))
	m.registering = true

	m.Update(passkeyRegisteredMsg{res: models.Result[string]{Flag: models.FlagCancelled}})

	assert.False(t, m.registering)
	assert.Empty(t, m.errMsg)
	assert.NotEmpty(t, m.status)
}

// ── Apps ──

func TestAppsModel_RevokeSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	apps := mock.NewMockAppService(ctrl)
	m := NewAppsModel(context.Background(), auth, apps)

	m.Update(userLoadedMsg{res: models.OK(models.User{AuthorizedApps: []models.AuthorizedApp{
		{AppID: "app-1", Scopes: "1"},
		{AppID: "app-2", Scopes: "01"},
	}})})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(keyRunes("d"))
	require.NotNil(t, m.confirm)

	apps.EXPECT().Deauthorize(gomock.Any(), "app-2").Return(models.OK(struct{}{}))
	_, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, deauthorizedMsg{res: models.OK(struct{}{})}, cmd())
}

// ── Developer apps ──

func TestDevAppsModel_CreateShowsSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mock.NewMockAppService(ctrl)
	m := NewDevAppsModel(context.Background(), apps)
	m.Update(ownedAppsMsg{res: models.OK([]models.OAuthApp{})})

	m.Update(keyRunes("n"))
	require.Equal(t, devPhaseForm, m.phase)
	m.inputs[0].SetValue("Demo")
	m.inputs[2].SetValue("https://demo.example/cb")

	created := models.OAuthApp{ID: "a1", Name: "Demo", ClientSecret: "s3cret"}
	apps.EXPECT().
		CreateApp(gomock.Any(), models.OAuthAppDraft{Name: "Demo", RedirectURI: "https://demo.example/cb"}).
		Return(models.OK(created))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, appSavedMsg{res: models.OK(created), create: true}, msg)

	_, cmd = m.Update(msg)
	assert.NotNil(t, cmd, "список перезагружается")
	assert.Equal(t, devPhaseDetail, m.phase)
	assert.Contains(t, m.View(), "s3cret")
}

func TestDevAppsModel_EditSendsOnlyChangedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mock.NewMockAppService(ctrl)
	m := NewDevAppsModel(context.Background(), apps)
	m.Update(ownedAppsMsg{res: models.OK([]models.OAuthApp{
		{ID: "a1", Name: "Demo", Description: "old", RedirectURI: "https://demo.example/cb"},
	})})

	m.Update(keyRunes("e"))
	require.Equal(t, devPhaseForm, m.phase)
	assert.Equal(t, "Demo", m.inputs[0].Value())
	m.inputs[1].SetValue("new")

	apps.EXPECT().
		EditApp(gomock.Any(), "a1", []models.AppEdit{{Field: "description", NewValue: "new"}}).
		Return(models.OK(models.OAuthApp{ID: "a1"}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, devPhaseList, m.phase)
	assert.Equal(t, "Приложение сохранено", m.status)
}

func TestDevAppsModel_DeleteAsksForConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	apps := mock.NewMockAppService(ctrl)
	m := NewDevAppsModel(context.Background(), apps)
	m.Update(ownedAppsMsg{res: models.OK([]models.OAuthApp{{ID: "a1", Name: "Demo"}})})

	m.Update(keyRunes("d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, "Demo", m.confirm.message)

	apps.EXPECT().DeleteApp(gomock.Any(), "a1").Return(models.OK(struct{}{}))
	_, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, appDeletedMsg{res: models.OK(struct{}{})}, cmd())
}

// ── TOTP ──

func TestTOTPModel_Enrol(t *testing.T) {
	ctrl := gomock.NewController(t)
	account := mock.NewMockAccountService(ctrl)
	m := NewTOTPModel(context.Background(), account)

	m.Update(totpQRMsg{res: models.OK(encodeGrid(t, finderGrid(), 3, 4))})
	assert.NotEmpty(t, m.qr)
	assert.Empty(t, m.errMsg)

	m.code.SetValue("123456")
	account.EXPECT().EnableTOTP(gomock.Any(), "123456").Return(models.OK(struct{}{}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.True(t, m.done)
	assert.Equal(t, "Двухфакторная аутентификация включена", m.status)
}

func TestTOTPModel_BadImageIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewTOTPModel(context.Background(), mock.NewMockAccountService(ctrl))

	m.Update(totpQRMsg{res: models.OK([]byte("not a png"))})
	assert.Empty(t, m.qr)
	assert.NotEmpty(t, m.errMsg)
}

// ── Checkout ──

func TestCheckoutModel_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	account := mock.NewMockAccountService(ctrl)
	m := NewCheckoutModel(context.Background(), account, true)
	m.Init()

	// j набирается в поле, а не двигает фокус
	m.Update(keyRunes("j"))
	assert.Equal(t, "j", m.product.Value())
	m.product.SetValue("premium")

	account.EXPECT().
		CheckoutAnonymous(gomock.Any(), []models.CheckoutItem{{Product: "premium"}}).
		Return(models.OK("https://checkout.example/s/1"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "https://checkout.example/s/1", m.url)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}
