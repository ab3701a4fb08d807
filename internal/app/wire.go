package app

import (
	"github.com/rs/zerolog"

	"keysigner/internal/domain"
	"keysigner/internal/services/keypair"
	"keysigner/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Config   *Config
	Store    domain.KeypairStore
	Keypairs *keypair.Service
	Log      zerolog.Logger
}

// NewWire constructs the dependency graph from cfg. An empty passphrase keeps
// keypair files in plain JSON.
func NewWire(cfg *Config, logger zerolog.Logger, passphrase string) *Wire {
	ks := store.NewKeypairFileStore(store.WithLogger(logger.With().Str("component", "store").Logger()))
	svc := keypair.New(ks,
		keypair.WithPassphrase(passphrase),
		keypair.WithLogger(logger.With().Str("component", "keypair").Logger()),
	)
	return &Wire{
		Config:   cfg,
		Store:    ks,
		Keypairs: svc,
		Log:      logger,
	}
}
