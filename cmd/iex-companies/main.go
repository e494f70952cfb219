package main

import (
	"context"
	"errors"
	"fmt"
	"iex-companies/internal/api/handler"
	"iex-companies/internal/api/repo"
	"iex-companies/internal/api/usecase"
	"iex-companies/internal/config"
	"iex-companies/internal/iex"
	"iex-companies/internal/kafka"
	"iex-companies/internal/logging"
	mongoGo "iex-companies/internal/mongo"
	"iex-companies/internal/seeder"
	"iex-companies/internal/web"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// - Load Configuration
	cfg, err := config.LoadConfig(config.Path())
	if errors.Is(err, config.ErrMissingMongoURL) {
		fmt.Println("Please set the " + config.MongoURLEnv + " environment variable!")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("iex-companies stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// - Setup MongoDB database
	client, err := mongoGo.ConnectDB(cfg.MongoDB.URL)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("Error during MongoDB disconnect", zap.Error(err))
			return
		}
		logger.Info("MongoDB client disconnected.")
	}()
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB.DatabaseName))

	companyCollection := mongoGo.GetCollection(client, cfg.MongoDB.DatabaseName,
		cfg.MongoDB.CollectionName)
	companyRepo := repo.NewRepo(companyCollection)

	// - Seed if empty
	var publisher seeder.Publisher
	if cfg.Kafka.Enabled() {
		if err := kafka.EnsureTopic(cfg.Kafka); err != nil {
			logger.Warn("could not ensure Kafka topic", zap.Error(err))
		}
		p := kafka.NewPublisher(cfg.Kafka, logger)
		defer p.Close()
		publisher = p
	}

	s := seeder.NewSeeder(companyRepo, iex.NewClient(cfg.IEX.BaseURL, cfg.IEX.Timeout()),
		publisher, cfg.IEX.Symbols, logger)
	inserted, err := s.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed after %d inserts: %w", inserted, err)
	}

	// - Serve
	if !strings.EqualFold(cfg.Log.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	templates, err := web.Templates()
	if err != nil {
		return err
	}
	router := handler.NewRouter(handler.NewHandler(usecase.NewUsecase(companyRepo)),
		templates, logger, cfg.Server.RequestTimeout())

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
