package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── OAuth apps ──────────────────────────────────────────────────────────────

func TestOAuthApps_Lifecycle(t *testing.T) {
	apps := map[string]models.OAuthApp{}

	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/app", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "User tok", r.Header.Get("SerbleAuth"))
			out := make([]map[string]string, 0, len(apps))
			for _, a := range apps {
				out = append(out, map[string]string{"Id": a.ID, "Name": a.Name, "RedirectUri": a.RedirectURI})
			}
			body, _ := json.Marshal(out)
			reply(w, http.StatusOK, string(body))
		})
		r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
			var draft models.OAuthAppDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			if draft.Name == "" {
				reply(w, http.StatusBadRequest, "Name is required")
				return
			}
			apps["app-1"] = models.OAuthApp{ID: "app-1", Name: draft.Name, Description: draft.Description, RedirectURI: draft.RedirectURI}
			reply(w, http.StatusOK, `{"id":"app-1","ownerId":"u1","name":"`+draft.Name+`","redirectUri":"`+draft.RedirectURI+`","clientSecret":"s3cret"}`)
		})
		r.Get("/app/{appId}", func(w http.ResponseWriter, r *http.Request) {
			a, ok := apps[chi.URLParam(r, "appId")]
			if !ok {
				reply(w, http.StatusNotFound, "")
				return
			}
			reply(w, http.StatusOK, `{"name":"`+a.Name+`","client_secret":"s3cret"}`)
		})
		r.Patch("/app/{appId}", func(w http.ResponseWriter, r *http.Request) {
			var edits []models.AppEdit
			require.NoError(t, json.NewDecoder(r.Body).Decode(&edits))
			a := apps[chi.URLParam(r, "appId")]
			for _, e := range edits {
				if e.Field != "name" {
					reply(w, http.StatusBadRequest, "Field doesn't exist")
					return
				}
				a.Name = e.NewValue
			}
			apps[a.ID] = a
			reply(w, http.StatusOK, "")
		})
		r.Delete("/app/{appId}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "appId") == "foreign" {
				reply(w, http.StatusForbidden, "")
				return
			}
			delete(apps, chi.URLParam(r, "appId"))
			reply(w, http.StatusOK, "")
		})
	})

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	ctx := context.Background()

	created, err := a.CreateOAuthApp(ctx, models.OAuthAppDraft{Name: "Demo", RedirectURI: "https://demo.example/cb"})
	require.NoError(t, err)
	assert.Equal(t, models.OAuthApp{
		ID:           "app-1",
		OwnerID:      "u1",
		Name:         "Demo",
		RedirectURI:  "https://demo.example/cb",
		ClientSecret: "s3cret",
	}, created)

	_, err = a.CreateOAuthApp(ctx, models.OAuthAppDraft{})
	requireRejected(t, err, models.FlagBadField, http.StatusBadRequest, ErrBadRequest)

	list, err := a.ListOAuthApps(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Demo", list[0].Name)
	assert.Equal(t, "https://demo.example/cb", list[0].RedirectURI)

	// пустое тело PATCH: id берётся из запроса
	edited, err := a.EditOAuthApp(ctx, "app-1", []models.AppEdit{{Field: "name", NewValue: "Renamed"}})
	require.NoError(t, err)
	assert.Equal(t, "app-1", edited.ID)

	_, err = a.EditOAuthApp(ctx, "app-1", []models.AppEdit{{Field: "colour", NewValue: "red"}})
	requireRejected(t, err, models.FlagBadField, http.StatusBadRequest, ErrBadRequest)

	got, err := a.GetOAuthApp(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", got.ID)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "s3cret", got.ClientSecret)

	err = a.DeleteOAuthApp(ctx, "foreign")
	requireRejected(t, err, models.FlagBadApp, http.StatusForbidden, ErrForbidden)

	require.NoError(t, a.DeleteOAuthApp(ctx, "app-1"))
	_, err = a.GetOAuthApp(ctx, "app-1")
	requireRejected(t, err, models.FlagNotFound, http.StatusNotFound, ErrNotFound)
}

func TestListOAuthApps_Unauthorized(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/app", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusUnauthorized, "")
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListOAuthApps(context.Background())
	requireRejected(t, err, models.FlagUnauthorized, http.StatusUnauthorized, ErrUnauthorized)
}

func TestCreateOAuthApp_NoID(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"name":"Demo"}`)
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateOAuthApp(context.Background(), models.OAuthAppDraft{Name: "Demo"})
	require.Error(t, err)
	assert.Equal(t, models.FlagUnknown, models.FlagOf(err))
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

// ── TOTP enrolment ──────────────────────────────────────────────────────────

func TestTOTPQRCode(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00}
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/account/mfa/totp/qrcode", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("SerbleAuth") == "" {
				reply(w, http.StatusUnauthorized, "")
				return
			}
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(png)
		})
	})

	a := newTestAdapter(t, srv.URL)

	_, err := a.TOTPQRCode(context.Background())
	requireRejected(t, err, models.FlagUnauthorized, http.StatusUnauthorized, ErrUnauthorized)

	a.SetToken("tok")
	got, err := a.TOTPQRCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCheckTOTP(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    bool
		flag    models.ErrorFlag
		wantErr bool
	}{
		{name: "valid", status: http.StatusOK, body: `{"valid":true}`, want: true},
		{name: "invalid", status: http.StatusOK, body: `{"valid":false}`, want: false},
		{name: "bare bool", status: http.StatusOK, body: `true`, want: true},
		{name: "bad request", status: http.StatusBadRequest, flag: models.FlagInvalidCredentials, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(r chi.Router) {
				r.Post("/account/mfa/totp", func(w http.ResponseWriter, r *http.Request) {
					var body map[string]string
					require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
					assert.Equal(t, "123456", body["totp_code"])
					reply(w, tt.status, tt.body)
				})
			})

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")
			got, err := a.CheckTOTP(context.Background(), "123456")
			if tt.wantErr {
				requireRejected(t, err, tt.flag, tt.status, nil)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckTOTP_NoVerdict(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/mfa/totp", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{}`)
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckTOTP(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

// ── Checkout ────────────────────────────────────────────────────────────────

func TestCheckout(t *testing.T) {
	var (
		authedHeader string
		anonHeader   string
		authedBody   string
	)
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/payments/checkout", func(w http.ResponseWriter, r *http.Request) {
			authedHeader = r.Header.Get("SerbleAuth")
			raw, _ := io.ReadAll(r.Body)
			authedBody = string(raw)
			reply(w, http.StatusOK, `{"url":"https://checkout.example/s/1"}`)
		})
		r.Post("/payments/checkoutanon", func(w http.ResponseWriter, r *http.Request) {
			anonHeader = r.Header.Get("SerbleAuth")
			reply(w, http.StatusOK, `"https://checkout.example/s/2"`)
		})
	})

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	items := []models.CheckoutItem{{Product: "premium"}, {Product: "storage", PriceID: "price_1"}}

	got, err := a.Checkout(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/s/1", got)
	assert.Equal(t, "User tok", authedHeader)
	assert.JSONEq(t, `["premium",{"id":"storage","priceid":"price_1"}]`, authedBody)

	got, err = a.CheckoutAnonymous(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/s/2", got)
	assert.Empty(t, anonHeader)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/payments/checkout", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusBadRequest, "Invalid product")
		})
	})

	a := newTestAdapter(t, srv.URL)
	_, err := a.Checkout(context.Background(), []models.CheckoutItem{{Product: "nope"}})
	requireRejected(t, err, models.FlagBadField, http.StatusBadRequest, ErrBadRequest)
}
