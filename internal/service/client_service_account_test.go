package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/internal/app"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/mock"
	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().EditAccount(gomock.Any(), []models.AccountEdit{{Field: "email", NewValue: "a@b.c"}}).
		Return(models.User{Email: "a@b.c"}, nil)

	// правка без имени поля отбрасывается
	res := svc.Edit(context.Background(), []models.AccountEdit{
		{Field: " email ", NewValue: "a@b.c"},
		{Field: "", NewValue: "ignored"},
	})
	require.True(t, res.Success)
	assert.Equal(t, "a@b.c", res.Value.Email)
}

func TestAccountService_Edit_NoEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAccountService(mock.NewMockSerbleAdapter(ctrl), logger.Nop())

	for _, edits := range [][]models.AccountEdit{nil, {}, {{Field: "  "}}} {
		res := svc.Edit(context.Background(), edits)
		assert.False(t, res.Success)
		assert.Equal(t, models.FlagNoEdits, res.Flag)
		assert.Equal(t, models.KindInvalidInput, models.KindOf(res.Err))
	}
}

func TestAccountService_Edit_NameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())

	taken := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagNameTaken, Status: 400, Message: app.MsgUsernameTaken}
	mockAdapter.EXPECT().EditAccount(gomock.Any(), gomock.Any()).Return(models.User{}, taken)

	res := svc.Edit(context.Background(), []models.AccountEdit{{Field: "username", NewValue: "bob"}})
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagNameTaken, res.Flag)
}

func TestAccountService_PaymentPortal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().GetPaymentPortalURL(gomock.Any()).Return("https://billing.example/p/1", nil)

	res := svc.PaymentPortal(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, "https://billing.example/p/1", res.Value)
}

func TestAccountService_PaymentPortal_NotCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())

	notCustomer := &models.Error{Kind: models.KindVerifierRejected, Flag: models.FlagNotCustomer, Status: 400}
	mockAdapter.EXPECT().GetPaymentPortalURL(gomock.Any()).Return("", notCustomer)

	res := svc.PaymentPortal(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagNotCustomer, res.Flag)
}

// ── TOTP enrolment ───────────────────────────────────────────────────────────

func TestAccountService_TOTPQRCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().TOTPQRCode(gomock.Any()).Return([]byte("png"), nil)

	res := svc.TOTPQRCode(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, []byte("png"), res.Value)
}

func TestAccountService_EnableTOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().CheckTOTP(gomock.Any(), "123456").Return(true, nil)
	assert.True(t, svc.EnableTOTP(ctx, " 123456 ").Success)

	// сервер ответил valid=false
	mockAdapter.EXPECT().CheckTOTP(gomock.Any(), "000000").Return(false, nil)
	res := svc.EnableTOTP(ctx, "000000")
	assert.False(t, res.Success)
	assert.Equal(t, models.FlagInvalidCredentials, res.Flag)
	assert.ErrorIs(t, res.Err, ErrTOTPRejected)

	res = svc.EnableTOTP(ctx, "  ")
	assert.ErrorIs(t, res.Err, ErrEmptyTOTP)
	assert.Equal(t, models.KindInvalidInput, models.KindOf(res.Err))
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func TestAccountService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockSerbleAdapter(ctrl)
	svc := NewAccountService(mockAdapter, logger.Nop())
	ctx := context.Background()

	items := []models.CheckoutItem{{Product: "premium", PriceID: "p1"}}
	mockAdapter.EXPECT().Checkout(gomock.Any(), items).Return("https://checkout.example/1", nil)
	mockAdapter.EXPECT().CheckoutAnonymous(gomock.Any(), items).Return("https://checkout.example/2", nil)

	res := svc.Checkout(ctx, []models.CheckoutItem{{Product: " premium ", PriceID: " p1"}, {Product: " "}})
	require.True(t, res.Success)
	assert.Equal(t, "https://checkout.example/1", res.Value)

	res = svc.CheckoutAnonymous(ctx, items)
	require.True(t, res.Success)
	assert.Equal(t, "https://checkout.example/2", res.Value)
}

func TestAccountService_Checkout_NoProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAccountService(mock.NewMockSerbleAdapter(ctrl), logger.Nop())

	res := svc.Checkout(context.Background(), []models.CheckoutItem{{PriceID: "p1"}})
	assert.Equal(t, models.FlagBadField, res.Flag)
	assert.ErrorIs(t, res.Err, ErrNoProducts)

	res = svc.CheckoutAnonymous(context.Background(), nil)
	assert.ErrorIs(t, res.Err, ErrNoProducts)
}
