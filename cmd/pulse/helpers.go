package pulse

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kallmejoe/Pulseyapp/internal/app"
	"github.com/kallmejoe/Pulseyapp/internal/config"
	"github.com/kallmejoe/Pulseyapp/internal/state"
	"github.com/kallmejoe/Pulseyapp/internal/store"
)

// resolveStorePath picks the store file: --db flag, then PULSE_DB, then the
// per-user default.
func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	if cfg := config.Load(); cfg.StorePath != "" {
		return cfg.StorePath, nil
	}
	return app.DefaultStorePath()
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Load().LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid PULSE_LOG level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	kv, err := store.Open(path)
	if err != nil {
		return err
	}
	defer kv.Close()
	return run(kv)
}

func withApp(run func(*state.App) error) error {
	return withStore(func(kv *store.Store) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		st, err := state.Open(kv, state.WithLogger(logger))
		if err != nil {
			return err
		}
		return run(st)
	})
}

func withSession(run func(*state.Session) error) error {
	return withStore(func(kv *store.Store) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		sess, err := state.OpenSession(kv, state.WithLogger(logger))
		if err != nil {
			return err
		}
		return run(sess)
	})
}
