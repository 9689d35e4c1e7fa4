package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/scope"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type appService struct {
	tracer

	adapter adapter.SerbleAdapter
	codec   *scope.Codec
}

func NewAppService(serbleAdapter adapter.SerbleAdapter, codec *scope.Codec, logger *logger.Logger) AppService {
	return &appService{tracer: newTracer(logger), adapter: serbleAdapter, codec: codec}
}

func (s *appService) Authorize(ctx context.Context, appID string, scopeIDs []string) models.Result[string] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[string](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	granted := s.codec.FilterValid(scopeIDs)
	bits := s.codec.Encode(granted)

	code, err := s.adapter.AuthorizeApp(ctx, appID, bits)
	if err != nil {
		return fail[string](log, "appService.Authorize", err)
	}

	log.Info().
		Str("func", "appService.Authorize").
		Str("app_id", appID).
		Str("scopes", bits).
		Msg("application authorized")
	return models.OK(code)
}

func (s *appService) Deauthorize(ctx context.Context, appID string) models.Result[struct{}] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[struct{}](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	if err := s.adapter.DeauthorizeApp(ctx, appID); err != nil {
		return fail[struct{}](log, "appService.Deauthorize", err)
	}
	return models.OK(struct{}{})
}

func (s *appService) PublicApp(ctx context.Context, appID string) models.Result[models.PublicApp] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[models.PublicApp](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	app, err := s.adapter.GetPublicApp(ctx, appID)
	if err != nil {
		return fail[models.PublicApp](log, "appService.PublicApp", err)
	}
	return models.OK(app)
}

func (s *appService) OwnedApps(ctx context.Context) models.Result[[]models.OAuthApp] {
	ctx, log := s.begin(ctx)

	apps, err := s.adapter.ListOAuthApps(ctx)
	if err != nil {
		return fail[[]models.OAuthApp](log, "appService.OwnedApps", err)
	}
	return models.OK(apps)
}

func (s *appService) OwnedApp(ctx context.Context, appID string) models.Result[models.OAuthApp] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[models.OAuthApp](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	app, err := s.adapter.GetOAuthApp(ctx, appID)
	if err != nil {
		return fail[models.OAuthApp](log, "appService.OwnedApp", err)
	}
	return models.OK(app)
}

func (s *appService) CreateApp(ctx context.Context, draft models.OAuthAppDraft) models.Result[models.OAuthApp] {
	ctx, log := s.begin(ctx)

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.RedirectURI = strings.TrimSpace(draft.RedirectURI)
	if draft.Name == "" {
		return models.Fail[models.OAuthApp](invalidInput(models.FlagBadField, ErrNoAppName))
	}
	if err := validRedirectURI(draft.RedirectURI); err != nil {
		return models.Fail[models.OAuthApp](invalidInput(models.FlagBadField, err))
	}

	app, err := s.adapter.CreateOAuthApp(ctx, draft)
	if err != nil {
		return fail[models.OAuthApp](log, "appService.CreateApp", err)
	}

	log.Info().
		Str("func", "appService.CreateApp").
		Str("app_id", app.ID).
		Msg("application created")
	return models.OK(app)
}

// EditApp drops edits without a field name. A blank new name is refused
// rather than sent.
func (s *appService) EditApp(ctx context.Context, appID string, edits []models.AppEdit) models.Result[models.OAuthApp] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[models.OAuthApp](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	var filtered []models.AppEdit
	for _, edit := range edits {
		edit.Field = strings.TrimSpace(edit.Field)
		if edit.Field == "" {
			continue
		}
		switch strings.ToLower(edit.Field) {
		case "name":
			if strings.TrimSpace(edit.NewValue) == "" {
				return models.Fail[models.OAuthApp](invalidInput(models.FlagBadField, ErrNoAppName))
			}
		case "redirecturi":
			if err := validRedirectURI(edit.NewValue); err != nil {
				return models.Fail[models.OAuthApp](invalidInput(models.FlagBadField, err))
			}
		}
		filtered = append(filtered, edit)
	}
	if len(filtered) == 0 {
		return models.Fail[models.OAuthApp](invalidInput(models.FlagNoEdits, ErrNoEdits))
	}

	app, err := s.adapter.EditOAuthApp(ctx, appID, filtered)
	if err != nil {
		return fail[models.OAuthApp](log, "appService.EditApp", err)
	}

	log.Info().Str("func", "appService.EditApp").Str("app_id", appID).Int("edits", len(filtered)).Msg("application updated")
	return models.OK(app)
}

func (s *appService) DeleteApp(ctx context.Context, appID string) models.Result[struct{}] {
	ctx, log := s.begin(ctx)

	if appID == "" {
		return models.Fail[struct{}](invalidInput(models.FlagBadApp, ErrNoAppID))
	}

	if err := s.adapter.DeleteOAuthApp(ctx, appID); err != nil {
		return fail[struct{}](log, "appService.DeleteApp", err)
	}

	log.Info().Str("func", "appService.DeleteApp").Str("app_id", appID).Msg("application deleted")
	return models.OK(struct{}{})
}

func (s *appService) Scopes() []models.ScopeDefinition {
	return s.codec.Definitions()
}

func (s *appService) DescribeScopes(bits string) []models.ScopeDefinition {
	granted := make(map[string]struct{})
	for _, id := range s.codec.Decode(bits) {
		granted[id] = struct{}{}
	}

	var out []models.ScopeDefinition
	for _, def := range s.codec.Definitions() {
		if _, ok := granted[def.ID]; ok {
			out = append(out, def)
		}
	}
	return out
}

func validRedirectURI(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return ErrBadRedirectURI
	}
	return nil
}
