package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alpha-code/activity-service/internal/adapter/blob"
	"github.com/alpha-code/activity-service/internal/adapter/postgres"
	activityrepo "github.com/alpha-code/activity-service/internal/adapter/postgres/activity"
	behaviorrepo "github.com/alpha-code/activity-service/internal/adapter/postgres/behavior"
	joystickrepo "github.com/alpha-code/activity-service/internal/adapter/postgres/joystick"
	osmocardrepo "github.com/alpha-code/activity-service/internal/adapter/postgres/osmocard"
	qrcoderepo "github.com/alpha-code/activity-service/internal/adapter/postgres/qrcode"
	"github.com/alpha-code/activity-service/internal/adapter/robotcatalog"
	"github.com/alpha-code/activity-service/internal/cache"
	"github.com/alpha-code/activity-service/internal/config"
	activitysvc "github.com/alpha-code/activity-service/internal/service/activity"
	behaviorsvc "github.com/alpha-code/activity-service/internal/service/behavior"
	joysticksvc "github.com/alpha-code/activity-service/internal/service/joystick"
	osmocardsvc "github.com/alpha-code/activity-service/internal/service/osmocard"
	qrcodesvc "github.com/alpha-code/activity-service/internal/service/qrcode"
	"github.com/alpha-code/activity-service/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires adapters and services, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrate(ctx, cfg.Database); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store := cache.New(cfg.Cache.GroupSize)

	blobStore, err := blob.NewStore(cfg.Blob, logger)
	if err != nil {
		return err
	}

	catalog := robotcatalog.NewClient(cfg.RobotCatalog.BaseURL, cfg.RobotCatalog.Timeout, logger)

	activityRepo := activityrepo.New(pool)

	behaviors := behaviorsvc.NewService(logger, behaviorrepo.New(pool), catalog, store)
	joysticks := joysticksvc.NewService(logger, joystickrepo.New(pool), postgres.NewTxManager(pool), store)
	cards := osmocardsvc.NewService(logger, osmocardrepo.New(pool), store)
	activities := activitysvc.NewService(logger, activityRepo, store)
	qrCodes := qrcodesvc.NewService(logger, qrcoderepo.New(pool), activityRepo, blobStore, store)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Behaviors: rest.NewBehaviorHandler(behaviors, logger),
		Joysticks: rest.NewJoystickHandler(joysticks, logger),
		Cards:     rest.NewOsmoCardHandler(cards, logger),
		QrCodes:   rest.NewQrCodeHandler(qrCodes, logger),
		Activity:  rest.NewActivityHandler(activities, logger),
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
