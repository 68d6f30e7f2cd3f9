package root

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lifeboard/internal/config"
	"lifeboard/internal/storage"
	"lifeboard/internal/store"
)

// openStore wires config → logger → sqlite → kv → store and hydrates. The
// returned cleanup closes the database and flushes the logger.
func openStore(ctx context.Context) (*store.Store, *zap.Logger, func(), error) {
	cfg, err := config.Load("lifeboard.yaml")
	if err != nil {
		return nil, nil, nil, err
	}

	var log *zap.Logger
	if cfg.Verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	s := store.New(storage.NewKV(db), log)
	if err := s.Hydrate(ctx); err != nil {
		_ = db.Close()
		_ = log.Sync()
		return nil, nil, nil, err
	}

	// Lock state is per-process; non-interactive commands unlock via --pin.
	if s.Locked() && pinFlag != "" {
		if err := s.Unlock(pinFlag); err != nil {
			log.Warn("unlock failed", zap.Error(err))
		}
	}

	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return s, log, cleanup, nil
}

// requireUnlocked guards commands that read or mutate domain state.
func requireUnlocked(s *store.Store) error {
	if s.Locked() {
		return store.ErrLocked
	}
	return nil
}
