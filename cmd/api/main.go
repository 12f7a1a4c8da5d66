package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"debenture/internal/config"
	"debenture/internal/database"
	"debenture/internal/logger"
	"debenture/internal/server"
	"debenture/internal/services"
	"debenture/internal/storage"
	"debenture/internal/validator"
)

// @title           Debenture API
// @version         1.0
// @description     Hosts fixed-coupon debenture contracts: issue an instrument, read its attributes and compute the coupon owed at a point in time.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Issuer key configured with ISSUER_API_KEY.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	provider, err := buildProvider(ctx, cfg, dbManager.DB())
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer provider.Close()

	db := dbManager.DB()
	contractService := services.NewContractService(db)
	auditService := services.NewAuditService(db)
	debentureService := services.NewDebentureService(contractService, storage.WithMetrics(provider), auditService)

	router := server.NewRouter(server.Services{
		Contracts:  contractService,
		Debentures: debentureService,
	}, server.Options{
		IssuerAPIKey:   cfg.IssuerAPIKey,
		MetricsEnabled: cfg.MetricsEnabled,
	})
	if cfg.IssuerAPIKey == "" {
		log.Warn("ISSUER_API_KEY is not set; issue endpoint is disabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Starting debenture server", "port", cfg.Port, "store_backend", provider.Backend(), "db_driver", cfg.DBDriver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// buildProvider opens the state store selected by STORE_BACKEND.
func buildProvider(ctx context.Context, cfg *config.Config, db *gorm.DB) (storage.Provider, error) {
	switch cfg.StoreBackend {
	case storage.BackendMemory:
		return storage.NewMemoryProvider(), nil
	case storage.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return storage.NewRedisProvider(client, cfg.RedisKeyPrefix), nil
	default:
		return storage.NewSQLProvider(db), nil
	}
}
