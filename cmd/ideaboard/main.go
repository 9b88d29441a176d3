package main

import (
	"github.com/gravadigital/ideaboard/internal/board"
	"github.com/gravadigital/ideaboard/internal/config"
	"github.com/gravadigital/ideaboard/internal/logger"
	"github.com/gravadigital/ideaboard/internal/persist"
	"github.com/gravadigital/ideaboard/internal/storage"
)

// Stand-in for the presentation layer: wires configuration, storage, the
// synchronizer and the engine, then reports a board summary and exits.
func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Log.Level)
	log := logger.Get()

	storageType, err := storage.ValidateStorageType(cfg.Storage.Type)
	if err != nil {
		log.Fatal("invalid storage configuration", "error", err)
	}

	kv, err := storage.NewFactory(storageType).CreateStore(cfg)
	if err != nil {
		log.Fatal("failed to open durable store", "error", err)
	}
	defer kv.Close()

	sync := persist.NewSynchronizer(kv)
	store := sync.Load()
	engine := board.NewEngine(store, sync)

	summary := board.Summarize(engine.Proposals())
	log.Info("board loaded",
		"storage", storageType,
		"participants", len(engine.Participants()),
		"proposals", summary.TotalProposals,
		"votes", summary.TotalVotes,
		"projects", summary.ProjectCount,
	)
	if current := engine.CurrentParticipant(); current != nil {
		log.Info("current session", "participant", current.Name, "role", current.Role)
	}
}
