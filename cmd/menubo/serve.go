package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/menubohq/menubo/internal/bot"
	"github.com/menubohq/menubo/internal/config"
	"github.com/menubohq/menubo/internal/line"
	"github.com/menubohq/menubo/internal/logger"
	"github.com/menubohq/menubo/internal/presets"
	"github.com/menubohq/menubo/internal/server"
	"github.com/menubohq/menubo/internal/storage"
)

func runServe() {
	fx.New(
		fx.Provide(
			provideSettings,
			provideLogger,
			provideLineClient,
			provideStorage,
			provideRegistry,
			provideBot,
			provideWebhookHandler,
			provideSweeper,
			provideServer,
		),
		fx.Invoke(
			startSweeper,
			startServer,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With(slog.String("component", "fx"))}
		}),
	).Run()
}

func provideSettings() (config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func provideLogger(settings config.Settings) *slog.Logger {
	log := logger.Init(settings.LogLevel, settings.LogFormat)
	if len(settings.AdminUserIDs) == 0 {
		log.Warn("ADMIN_USER_IDS is empty; image uploads will be rejected")
	}
	return log
}

func provideLineClient(log *slog.Logger, settings config.Settings) *line.Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return line.NewClient(log, httpClient, settings.ChannelAccessToken)
}

func provideStorage(lc fx.Lifecycle, settings config.Settings) (storage.Provider, error) {
	gcs, err := storage.NewGCS(context.Background(), settings.Bucket)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return gcs.Close() }})
	return gcs, nil
}

func provideRegistry(log *slog.Logger, settings config.Settings) (*presets.Registry, error) {
	if settings.PresetsPath == "" {
		return presets.Default(), nil
	}
	registry, err := presets.LoadFile(settings.PresetsPath)
	if err != nil {
		return nil, err
	}
	log.Info("presets loaded",
		slog.String("path", settings.PresetsPath),
		slog.Int("count", registry.Len()),
	)
	return registry, nil
}

func provideBot(log *slog.Logger, client *line.Client, store storage.Provider, registry *presets.Registry, settings config.Settings) *bot.Bot {
	return bot.New(log, client, store, registry, settings, bot.Options{
		Bucket:     settings.Bucket,
		EchoPrefix: settings.EchoPrefix,
	})
}

func provideWebhookHandler(log *slog.Logger, settings config.Settings, b *bot.Bot) *bot.Handler {
	return bot.NewHandler(log, settings.ChannelSecret, b)
}

func provideSweeper(log *slog.Logger, store storage.Provider, settings config.Settings) *bot.Sweeper {
	return bot.NewSweeper(log, store, settings.UploadTTL)
}

func provideServer(log *slog.Logger, settings config.Settings, handler *bot.Handler) *server.Server {
	return server.New(settings.Addr(), log, handler)
}

func startSweeper(lc fx.Lifecycle, sweeper *bot.Sweeper, settings config.Settings) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start(settings.CleanupSchedule)
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}

func startServer(lc fx.Lifecycle, log *slog.Logger, srv *server.Server, shutdowner fx.Shutdowner, settings config.Settings) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting server", slog.String("addr", settings.Addr()))
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
