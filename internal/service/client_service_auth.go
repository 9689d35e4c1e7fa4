package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type authService struct {
	tracer

	adapter  adapter.SerbleAdapter
	sessions SessionManager
}

func NewAuthService(serbleAdapter adapter.SerbleAdapter, sessions SessionManager, logger *logger.Logger) AuthService {
	return &authService{tracer: newTracer(logger), adapter: serbleAdapter, sessions: sessions}
}

func (a *authService) Login(ctx context.Context, username, password string) models.Result[models.LoginResult] {
	ctx, log := a.begin(ctx)

	if username == "" || password == "" {
		return models.Fail[models.LoginResult](invalidInput(models.FlagInvalidCredentials, ErrEmptyCredentials))
	}

	// L1: обмениваем логин и пароль на токен или MFA-челлендж
	result, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		return fail[models.LoginResult](log, "authService.Login", err)
	}

	// L2: при включённом TOTP сессию не ставим, ждём второй фактор
	if result.MFARequired {
		log.Info().Str("func", "authService.Login").Msg("second factor required")
		return models.OK(result)
	}

	return a.establish(ctx, log, "authService.Login", result)
}

func (a *authService) SubmitTOTP(ctx context.Context, mfaToken, code string) models.Result[models.LoginResult] {
	ctx, log := a.begin(ctx)

	if mfaToken == "" || code == "" {
		return models.Fail[models.LoginResult](invalidInput(models.FlagInvalidCredentials, ErrEmptyTOTP))
	}

	result, err := a.adapter.SubmitTOTP(ctx, mfaToken, code)
	if err != nil {
		return fail[models.LoginResult](log, "authService.SubmitTOTP", err)
	}

	return a.establish(ctx, log, "authService.SubmitTOTP", result)
}

func (a *authService) Logout(ctx context.Context) error {
	ctx, log := a.begin(ctx)

	if err := a.sessions.Clear(ctx); err != nil {
		log.Err(err).Str("func", "authService.Logout").Msg("failed to clear session")
		return fmt.Errorf("error logging out: %w", err)
	}

	log.Info().Str("func", "authService.Logout").Msg("logged out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) models.Result[models.User] {
	return a.sessions.Validate(ctx)
}

// establish installs the token of a completed login.
func (a *authService) establish(ctx context.Context, log *logger.Logger, op string, result models.LoginResult) models.Result[models.LoginResult] {
	if result.Token == "" {
		return fail[models.LoginResult](log, op, &models.Error{Kind: models.KindUnknown, Flag: models.FlagUnknown, Err: ErrEmptyToken})
	}

	if err := a.sessions.Set(ctx, result.Token); err != nil {
		return fail[models.LoginResult](log, op, err)
	}

	log.Info().Str("func", op).Msg("logged in")
	return models.OK(result)
}
