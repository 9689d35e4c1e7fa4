package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type passkeyService struct {
	tracer

	adapter  adapter.SerbleAdapter
	ceremony Ceremony
	sessions SessionManager
}

func NewPasskeyService(serbleAdapter adapter.SerbleAdapter, ceremony Ceremony, sessions SessionManager, logger *logger.Logger) PasskeyService {
	return &passkeyService{
		tracer:   newTracer(logger),
		adapter:  serbleAdapter,
		ceremony: ceremony,
		sessions: sessions,
	}
}

func (p *passkeyService) Register(ctx context.Context, prefs models.RegistrationPreferences) models.Result[string] {
	ctx, _ = p.begin(ctx)

	if !p.sessions.Get().Valid(time.Now()) {
		return models.Fail[string](noSession())
	}
	return p.ceremony.Register(ctx, prefs)
}

func (p *passkeyService) Login(ctx context.Context, username string) models.Result[models.LoginResult] {
	ctx, log := p.begin(ctx)

	res := p.ceremony.Authenticate(ctx, username)
	if !res.Success {
		return res
	}

	if res.Value.MFARequired {
		return res
	}
	if res.Value.Token == "" {
		return fail[models.LoginResult](log, "passkeyService.Login", &models.Error{Kind: models.KindUnknown, Flag: models.FlagUnknown, Err: ErrEmptyToken})
	}

	if err := p.sessions.Set(ctx, res.Value.Token); err != nil {
		return fail[models.LoginResult](log, "passkeyService.Login", err)
	}

	log.Info().Str("func", "passkeyService.Login").Msg("logged in with passkey")
	return res
}

func (p *passkeyService) List(ctx context.Context) models.Result[[]models.Passkey] {
	ctx, log := p.begin(ctx)

	passkeys, err := p.adapter.ListPasskeys(ctx)
	if err != nil {
		return fail[[]models.Passkey](log, "passkeyService.List", err)
	}
	return models.OK(passkeys)
}

func (p *passkeyService) Delete(ctx context.Context, name string) models.Result[struct{}] {
	ctx, log := p.begin(ctx)

	if err := p.adapter.DeletePasskey(ctx, name); err != nil {
		return fail[struct{}](log, "passkeyService.Delete", err)
	}
	return models.OK(struct{}{})
}
