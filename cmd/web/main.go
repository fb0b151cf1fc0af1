package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/backend"
	"github.com/AditiPateria/toursandtravels/internal/config"
	"github.com/AditiPateria/toursandtravels/internal/events"
	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/internal/observability"
	"github.com/AditiPateria/toursandtravels/internal/session"
	"github.com/AditiPateria/toursandtravels/internal/tokenstore"
	"github.com/AditiPateria/toursandtravels/internal/web"
	"github.com/AditiPateria/toursandtravels/internal/web/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newTokenStore(cfg, logger)
	if redisStore, ok := store.(*tokenstore.RedisStore); ok {
		defer redisStore.Close()
	}
	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventSessionExpired, func(_ context.Context, ev events.Event) error {
		logger.Warn("credential rejected by backend, session dropped", zap.String("username", ev.Username))
		return nil
	})

	sessions := session.NewManager(store, dispatcher, logger)

	gw, err := gateway.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), sessions, logger, metrics)
	if err != nil {
		logger.Fatal("failed to init gateway", zap.Error(err))
	}

	sessions.SetExchanger(backend.NewAuthClient(gw))
	tourClient := backend.NewTourClient(gw)
	bookingClient := backend.NewBookingClient(gw)
	feedbackClient := backend.NewFeedbackClient(gw)
	adminClient := backend.NewAdminClient(gw)

	sessions.Hydrate(ctx)
	logger.Info("session resolved", zap.String("state", sessions.Current().State.String()))

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	web.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	web.RegisterRoutes(app, web.RouteConfig{
		Session:  sessions,
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, gw, metrics),
		Auth:     handlers.NewAuthHandler(sessions),
		Tours:    handlers.NewToursHandler(tourClient),
		Bookings: handlers.NewBookingsHandler(bookingClient),
		Feedback: handlers.NewFeedbackHandler(feedbackClient),
		Admin:    handlers.NewAdminHandler(adminClient, tourClient),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newTokenStore(cfg *config.Config, logger *zap.Logger) tokenstore.Store {
	if cfg.Token.Backend == config.TokenStoreRedis {
		return tokenstore.NewRedisStore(cfg.Redis, cfg.Token.RedisKey, logger)
	}
	return tokenstore.NewFileStore(cfg.Token.FilePath)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
