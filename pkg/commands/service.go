package commands

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/logging"
	"tableflip.dev/mood/pkg/store"
)

// session is the configuration, logger and loaded journal shared by the
// commands that touch the store.
type session struct {
	cfg *store.Settings
	log *zap.Logger
	svc *app.Service
}

func (s *session) Close() {
	if s.log != nil {
		_ = s.log.Sync()
	}
}

// openSession loads configuration, builds the logger and loads the
// journal. quiet drops log output unless --log-file is set.
func openSession(ctx context.Context, quiet bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	var log *zap.Logger
	if quiet && root.LogFile == "" {
		log = zap.NewNop()
	} else {
		log, err = logging.New(root.Verbose, root.LogFile)
		if err != nil {
			return nil, err
		}
	}
	log.Debug("config loaded", zap.String("file", cfg.ConfigFile), zap.String("path", cfg.Path))

	svc, err := app.New(cfg, log)
	if err != nil {
		return nil, err
	}
	if _, err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, svc: svc}, nil
}
