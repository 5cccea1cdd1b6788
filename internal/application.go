package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-session/internal/config"
	"github.com/rocketscienceinc/tictactoe-session/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-session/internal/repository"
	"github.com/rocketscienceinc/tictactoe-session/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-session/internal/service"
	"github.com/rocketscienceinc/tictactoe-session/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-session/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := service.NewGameRegistry()
	recorder := metrics.NewRecorder(registry.Len)

	var gameUseCase *usecase.GameManager
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		snapshotRepo := repository.NewSnapshotRepository(redisStorage, conf.Session.MaxAge)
		gameUseCase = usecase.NewGameManager(logger, registry, snapshotRepo, recorder)

		log.Info("mirroring sessions to redis", "addr", conf.Redis.GetRedisAddr())
	} else {
		gameUseCase = usecase.NewGameManager(logger, registry, nil, recorder)
	}

	cookie := rest.SessionCookie{
		Name:   conf.Session.CookieName,
		MaxAge: conf.Session.MaxAge,
	}
	router := rest.NewRouter(logger, cookie, gameUseCase, recorder.Handler())

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, logger, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
