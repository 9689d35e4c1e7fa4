package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type accountService struct {
	tracer

	adapter adapter.SerbleAdapter
}

func NewAccountService(serbleAdapter adapter.SerbleAdapter, logger *logger.Logger) AccountService {
	return &accountService{tracer: newTracer(logger), adapter: serbleAdapter}
}

func (a *accountService) Edit(ctx context.Context, edits []models.AccountEdit) models.Result[models.User] {
	ctx, log := a.begin(ctx)

	// edits without a field name are dropped, not sent
	var filtered []models.AccountEdit
	for _, edit := range edits {
		edit.Field = strings.TrimSpace(edit.Field)
		if edit.Field != "" {
			filtered = append(filtered, edit)
		}
	}
	if len(filtered) == 0 {
		return models.Fail[models.User](invalidInput(models.FlagNoEdits, ErrNoEdits))
	}

	user, err := a.adapter.EditAccount(ctx, filtered)
	if err != nil {
		return fail[models.User](log, "accountService.Edit", err)
	}

	log.Info().Str("func", "accountService.Edit").Int("edits", len(filtered)).Msg("account updated")
	return models.OK(user)
}

func (a *accountService) PaymentPortal(ctx context.Context) models.Result[string] {
	ctx, log := a.begin(ctx)

	url, err := a.adapter.GetPaymentPortalURL(ctx)
	if err != nil {
		return fail[string](log, "accountService.PaymentPortal", err)
	}
	return models.OK(url)
}

func (a *accountService) TOTPQRCode(ctx context.Context) models.Result[[]byte] {
	ctx, log := a.begin(ctx)

	png, err := a.adapter.TOTPQRCode(ctx)
	if err != nil {
		return fail[[]byte](log, "accountService.TOTPQRCode", err)
	}
	return models.OK(png)
}

// EnableTOTP confirms enrolment with a code from the authenticator app. A
// code the server judges wrong fails with the invalid-credentials flag.
func (a *accountService) EnableTOTP(ctx context.Context, code string) models.Result[struct{}] {
	ctx, log := a.begin(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return models.Fail[struct{}](invalidInput(models.FlagNone, ErrEmptyTOTP))
	}

	valid, err := a.adapter.CheckTOTP(ctx, code)
	if err != nil {
		return fail[struct{}](log, "accountService.EnableTOTP", err)
	}
	if !valid {
		return fail[struct{}](log, "accountService.EnableTOTP", &models.Error{
			Kind: models.KindVerifierRejected,
			Flag: models.FlagInvalidCredentials,
			Err:  ErrTOTPRejected,
		})
	}

	log.Info().Str("func", "accountService.EnableTOTP").Msg("totp enabled")
	return models.OK(struct{}{})
}

func (a *accountService) Checkout(ctx context.Context, items []models.CheckoutItem) models.Result[string] {
	ctx, log := a.begin(ctx)

	items = checkoutItems(items)
	if len(items) == 0 {
		return models.Fail[string](invalidInput(models.FlagBadField, ErrNoProducts))
	}

	url, err := a.adapter.Checkout(ctx, items)
	if err != nil {
		return fail[string](log, "accountService.Checkout", err)
	}
	return models.OK(url)
}

func (a *accountService) CheckoutAnonymous(ctx context.Context, items []models.CheckoutItem) models.Result[string] {
	ctx, log := a.begin(ctx)

	items = checkoutItems(items)
	if len(items) == 0 {
		return models.Fail[string](invalidInput(models.FlagBadField, ErrNoProducts))
	}

	url, err := a.adapter.CheckoutAnonymous(ctx, items)
	if err != nil {
		return fail[string](log, "accountService.CheckoutAnonymous", err)
	}
	return models.OK(url)
}

// checkoutItems trims ids and drops items without a product.
func checkoutItems(items []models.CheckoutItem) []models.CheckoutItem {
	out := make([]models.CheckoutItem, 0, len(items))
	for _, item := range items {
		item.Product = strings.TrimSpace(item.Product)
		item.PriceID = strings.TrimSpace(item.PriceID)
		if item.Product != "" {
			out = append(out, item)
		}
	}
	return out
}
