package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-serble-keeper/internal/adapter"
	"github.com/MKhiriev/go-serble-keeper/internal/authenticator"
	"github.com/MKhiriev/go-serble-keeper/internal/client"
	"github.com/MKhiriev/go-serble-keeper/internal/config"
	"github.com/MKhiriev/go-serble-keeper/internal/crypto"
	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/passkey"
	"github.com/MKhiriev/go-serble-keeper/internal/scope"
	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/internal/store"
	"github.com/MKhiriev/go-serble-keeper/internal/tui"
	"github.com/MKhiriev/go-serble-keeper/internal/workers"
	"github.com/MKhiriev/go-serble-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("go-serble-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serbleAdapter, err := adapter.NewHTTPSerbleAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create serble adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	kdf, err := crypto.NewKDF(cfg.App.VaultKDF, cfg.App.VaultKDFSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault key derivation")
	}

	relay := tui.NewStateRelay()
	ceremony := passkey.NewCeremony(
		serbleAdapter,
		authenticator.NewSoftwareAuthenticator(storages.Credentials, log),
		cfg.Passkey.Origin,
		log,
		passkey.WithStateHook(relay.Hook()),
	)

	services := service.NewClientServices(storages, serbleAdapter, crypto.NewVaultCipher(kdf), scope.Default(), ceremony, log)

	ui, err := tui.New(services, buildInfo, relay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ctx, services, ui, workers.NewWorkers(ctx, services, cfg.Workers), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
