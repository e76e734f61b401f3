package app

import (
	"go.uber.org/zap"

	catalogsvc "roomkey/internal/services/catalog"
	"roomkey/internal/store"
)

// Wire bundles the input source, services and logger for the CLI.
type Wire struct {
	Config  *Config
	Input   *store.FileSource
	Catalog *catalogsvc.Service
	Log     *zap.Logger
}

// NewWire constructs the dependency graph from cfg. A nil logger discards output.
func NewWire(cfg *Config, log *zap.Logger) *Wire {
	if log == nil {
		log = zap.NewNop()
	}
	src := store.NewFileSource(cfg.Input)
	return &Wire{
		Config:  cfg,
		Input:   src,
		Catalog: catalogsvc.New(src, log),
		Log:     log,
	}
}
