package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/crypto"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type vaultService struct {
	tracer

	adapter   adapter.SerbleAdapter
	cipher    crypto.VaultCipher
	passwords *store.PasswordCache
}

func NewVaultService(serbleAdapter adapter.SerbleAdapter, cipher crypto.VaultCipher, passwords *store.PasswordCache, logger *logger.Logger) VaultService {
	return &vaultService{
		tracer:    newTracer(logger),
		adapter:   serbleAdapter,
		cipher:    cipher,
		passwords: passwords,
	}
}

func (v *vaultService) List(ctx context.Context) models.Result[[]models.Note] {
	ctx, log := v.begin(ctx)

	notes, err := v.adapter.ListNotes(ctx)
	if err != nil {
		return fail[[]models.Note](log, "vaultService.List", err)
	}
	return models.OK(notes)
}

func (v *vaultService) Open(ctx context.Context, noteID, password string, remember bool) models.Result[string] {
	ctx, log := v.begin(ctx)

	fromCache := password == ""
	password, ok := v.resolvePassword(ctx, noteID, password)
	if !ok {
		return models.Fail[string](invalidInput(models.FlagNone, ErrPasswordRequired))
	}

	blob, err := v.adapter.GetNote(ctx, noteID)
	if err != nil {
		return fail[string](log, "vaultService.Open", err)
	}

	// a freshly allocated note has no content yet
	if blob == "" {
		return models.OK("")
	}

	plaintext, err := v.cipher.Decrypt(blob, password)
	if err != nil {
		// a cached password that no longer opens the note is stale
		if fromCache {
			if ferr := v.passwords.Forget(ctx, noteID); ferr != nil {
				log.Err(ferr).Str("func", "vaultService.Open").Msg("failed to forget stale note password")
			}
		}
		return fail[string](log, "vaultService.Open", decryptionFailed(err))
	}

	if remember {
		v.remember(ctx, log, noteID, password)
	}
	return models.OK(plaintext)
}

func (v *vaultService) Save(ctx context.Context, noteID, plaintext, password string, remember bool) models.Result[struct{}] {
	ctx, log := v.begin(ctx)

	password, ok := v.resolvePassword(ctx, noteID, password)
	if !ok {
		return models.Fail[struct{}](invalidInput(models.FlagNone, ErrPasswordRequired))
	}

	blob, err := v.cipher.Encrypt(plaintext, password)
	if err != nil {
		return fail[struct{}](log, "vaultService.Save", fmt.Errorf("error encrypting note: %w", err))
	}

	if err = v.adapter.UpdateNote(ctx, noteID, blob); err != nil {
		return fail[struct{}](log, "vaultService.Save", err)
	}

	if remember {
		v.remember(ctx, log, noteID, password)
	}
	return models.OK(struct{}{})
}

func (v *vaultService) Create(ctx context.Context, plaintext, password string, remember bool) models.Result[string] {
	ctx, log := v.begin(ctx)

	if password == "" {
		return models.Fail[string](invalidInput(models.FlagNone, ErrPasswordRequired))
	}

	// encrypt first so a cipher failure does not leave an empty note behind
	blob, err := v.cipher.Encrypt(plaintext, password)
	if err != nil {
		return fail[string](log, "vaultService.Create", fmt.Errorf("error encrypting note: %w", err))
	}

	noteID, err := v.adapter.CreateNote(ctx)
	if err != nil {
		return fail[string](log, "vaultService.Create", err)
	}

	if err = v.adapter.UpdateNote(ctx, noteID, blob); err != nil {
		return fail[string](log, "vaultService.Create", err)
	}

	if remember {
		v.remember(ctx, log, noteID, password)
	}

	log.Info().Str("func", "vaultService.Create").Str("note_id", noteID).Msg("note created")
	return models.OK(noteID)
}

func (v *vaultService) Delete(ctx context.Context, noteID string) models.Result[struct{}] {
	ctx, log := v.begin(ctx)

	if err := v.adapter.DeleteNote(ctx, noteID); err != nil {
		return fail[struct{}](log, "vaultService.Delete", err)
	}

	if err := v.passwords.Forget(ctx, noteID); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Msg("failed to forget note password")
	}
	return models.OK(struct{}{})
}

func (v *vaultService) CachedPassword(ctx context.Context, noteID string) (string, bool) {
	return v.passwords.Lookup(ctx, noteID)
}

func (v *vaultService) resolvePassword(ctx context.Context, noteID, password string) (string, bool) {
	if password != "" {
		return password, true
	}
	return v.passwords.Lookup(ctx, noteID)
}

// remember is best effort: the note operation already succeeded.
func (v *vaultService) remember(ctx context.Context, log *logger.Logger, noteID, password string) {
	if err := v.passwords.Remember(ctx, noteID, password); err != nil {
		log.Err(err).Str("func", "vaultService.remember").Msg("failed to cache note password")
	}
}
