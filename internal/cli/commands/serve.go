package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/handlers"
	"StudyDeck/internal/middleware"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type serveCmd struct{}

func (serveCmd) Name() string { return "serve" }
func (serveCmd) Description() string {
	return "Поднять локальный дашборд (данные остаются на машине)"
}
func (serveCmd) Usage() string { return "serve" }

func (serveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() { _ = logger.Sync() }()

	store, doneF, err := bootstrap.OpenFileStore(cfg)
	if err != nil {
		return err
	}
	defer doneF()
	st, doneS, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer doneS()

	h := handlers.NewHandler(store, st, sugar)
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: h.Router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sugar.Infow("Dashboard up",
		"addr", cfg.ListenAddr,
		"data_dir", cfg.DataDir,
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func init() { RegisterCmd(serveCmd{}) }
