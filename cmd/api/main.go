package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biodiversity-credits/config"
	httpHandler "biodiversity-credits/internal/adapter/http/handler"
	"biodiversity-credits/internal/adapter/storage/memory"
	pgStorage "biodiversity-credits/internal/adapter/storage/postgres"
	redisStorage "biodiversity-credits/internal/adapter/storage/redis"
	sqliteStorage "biodiversity-credits/internal/adapter/storage/sqlite"
	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/internal/service"
	"biodiversity-credits/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// backend is the registry store together with everything main must ping
// and close.
type backend struct {
	store    ports.ByteStore
	audit    ports.AuditRepository // nil unless store.backend=postgres
	checkers []ports.HealthChecker
	closers  []func()
}

func (b *backend) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BDC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Backend).
		Str("codec", cfg.Codec.Kind).
		Msg("Starting Biodiversity Credit Registry")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required")
	}

	ctx := context.Background()

	// Redis serves login nonces and rate limits even when it does not hold the registry.
	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	}

	be, err := openBackend(ctx, cfg, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Backend).Msg("Failed to open registry backend")
	}
	defer be.close()

	// Core services
	codec, err := newCodec(cfg.Codec)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scalar codec")
	}
	transform := service.NewTransformEngine(codec, cfg.Transform.Lenient, log)
	verifier := service.NewEthereumVerifier()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(be.audit, log)

	registry := service.NewCreditRegistry(be.store, codec, cfg.Registry.IndexMaxRetries, log)
	lifecycle := service.NewLifecycleService(registry, transform, auditSvc, log)
	decryption := service.NewDecryptionService(codec, verifier, log)
	reporting := service.NewReportingService(registry)

	var (
		nonceStore     ports.NonceStore = memory.NewNonceStore()
		rateLimitStore *redisStorage.RateLimitStore
		checkers       = be.checkers
	)
	if rdb != nil {
		nonceStore = redisStorage.NewNonceStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		if cfg.Store.Backend != config.BackendRedis {
			checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		}
	} else {
		log.Warn().Msg("Redis disabled: login nonces are process-local and rate limiting is off")
	}

	authSvc := service.NewAuthService(verifier, nonceStore, tokenSvc, service.SessionSettings{
		RegistryAddress: cfg.Session.RegistryAddress,
		ChainID:         cfg.Session.ChainID,
		DurationDays:    cfg.Session.DurationDays,
	}, log)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:       authSvc,
		TokenSvc:      tokenSvc,
		Registry:      registry,
		Lifecycle:     lifecycle,
		ReportingSvc:  reporting,
		DecryptionSvc: decryption,
		NewSigner: func(sig domain.Signature) ports.Signer {
			return service.NewPresignedSigner(sig)
		},
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openBackend connects the byte store selected by store.backend.
func openBackend(ctx context.Context, cfg *config.Config, rdb *goredis.Client, log zerolog.Logger) (*backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store := memory.NewByteStore()
		log.Warn().Msg("Memory registry backend: credits are lost on restart")
		return &backend{store: store, checkers: []ports.HealthChecker{store}}, nil

	case config.BackendRedis:
		return &backend{
			store:    redisStorage.NewByteStore(rdb, cfg.Redis.Prefix),
			checkers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		}, nil

	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{
			store:    pgStorage.NewByteStore(pool),
			audit:    pgStorage.NewAuditRepository(pool),
			checkers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			closers:  []func(){pool.Close},
		}, nil

	case config.BackendSQLite:
		db, err := sqliteStorage.NewDB(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("SQLite registry opened")
		return &backend{
			store:    sqliteStorage.NewByteStore(db),
			checkers: []ports.HealthChecker{db},
			closers: []func(){func() {
				if err := db.Close(); err != nil {
					log.Error().Err(err).Msg("closing SQLite registry")
				}
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func newCodec(cfg config.CodecConfig) (ports.ScalarCodec, error) {
	if cfg.Kind == config.CodecAES {
		codec, err := service.NewAESCodec(cfg.AESKey)
		if err != nil {
			return nil, err
		}
		return codec, nil
	}
	return service.NewTaggedCodec(), nil
}
