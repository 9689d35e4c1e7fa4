package service

import (
	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/crypto"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/scope"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
)

type ClientServices struct {
	Sessions        SessionManager
	AuthService     AuthService
	VaultService    VaultService
	AppService      AppService
	PasskeyService  PasskeyService
	AccountService  AccountService
	SessionWatchJob SessionWatchJob
}

func NewClientServices(
	storages *store.ClientStorages,
	serbleAdapter adapter.SerbleAdapter,
	cipher crypto.VaultCipher,
	codec *scope.Codec,
	ceremony Ceremony,
	logger *logger.Logger,
) *ClientServices {
	sessions := NewSessionManager(serbleAdapter, storages.Sessions, logger)

	return &ClientServices{
		Sessions:        sessions,
		AuthService:     NewAuthService(serbleAdapter, sessions, logger),
		VaultService:    NewVaultService(serbleAdapter, cipher, storages.Passwords, logger),
		AppService:      NewAppService(serbleAdapter, codec, logger),
		PasskeyService:  NewPasskeyService(serbleAdapter, ceremony, sessions, logger),
		AccountService:  NewAccountService(serbleAdapter, logger),
		SessionWatchJob: NewSessionWatchJob(sessions, logger),
	}
}
