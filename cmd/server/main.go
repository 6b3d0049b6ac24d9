package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/minifeed/internal/api"
	"github.com/rohits-web03/minifeed/internal/api/handlers"
	"github.com/rohits-web03/minifeed/internal/api/services"
	"github.com/rohits-web03/minifeed/internal/config"
	"github.com/rohits-web03/minifeed/internal/logging"
	"github.com/rohits-web03/minifeed/internal/repositories"
	"github.com/rohits-web03/minifeed/internal/store"
)

// @title Minifeed API
// @version 1.0
// @description A small social feed: users, posts, single-level replies and post images.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	seed := flag.Bool("seed", false, "copy the JSON seed files into the database and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *seed {
		err = seedDatabase(ctx, cfg)
	} else {
		err = run(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	src, err := seedSource(cfg)
	if err != nil {
		return err
	}
	st, err := store.New(ctx, src,
		store.WithBcryptCost(cfg.BcryptCost),
		store.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	images, err := imageStorage(cfg)
	if err != nil {
		return err
	}
	picsum, err := services.NewPicsumProxy(cfg.PicsumBaseURL, cfg.ProxyCacheSize, cfg.ProxyTimeout)
	if err != nil {
		return err
	}

	h := handlers.New(st, images, picsum, handlers.Options{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		SecureCookies: cfg.IsProduction(),
		MaxUploadMB:   cfg.MaxUploadMB,
		Logger:        logger,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mux := api.SetupRouter(h, api.RouterConfig{
		Cors:               cfg.CorsConfig,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		LoginBurst:         cfg.LoginBurst,
		TrustProxy:         cfg.TrustProxy,
		Registry:           reg,
		Logger:             logger,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting minifeed server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func seedSource(cfg config.Config) (store.Source, error) {
	switch cfg.SeedSource {
	case "json":
		dir, err := repositories.FindDataDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return repositories.JSONSource{Dir: dir}, nil
	case "database":
		db, err := repositories.ConnectDatabase(cfg.DBDriver, cfg.DB_URL)
		if err != nil {
			return nil, err
		}
		return repositories.DBSource{DB: db}, nil
	default:
		return nil, fmt.Errorf("unknown SEED_SOURCE %q", cfg.SeedSource)
	}
}

func imageStorage(cfg config.Config) (repositories.ImageStorage, error) {
	switch cfg.UploadBackend {
	case "local":
		local, err := repositories.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return local, nil
	case "r2":
		r2 := cfg.R2
		bucket, err := repositories.NewR2Storage(r2.AccessKeyID, r2.SecretAccessKey, r2.AccountID, r2.BucketName, r2.Region, r2.Endpoint)
		if err != nil {
			return nil, err
		}
		return bucket, nil
	default:
		return nil, fmt.Errorf("unknown UPLOAD_BACKEND %q", cfg.UploadBackend)
	}
}

// seedDatabase loads the JSON seed files and writes them into the seed tables.
func seedDatabase(ctx context.Context, cfg config.Config) error {
	dir, err := repositories.FindDataDir(cfg.DataDir)
	if err != nil {
		return err
	}
	data, err := repositories.JSONSource{Dir: dir}.Load(ctx)
	if err != nil {
		return err
	}
	db, err := repositories.ConnectDatabase(cfg.DBDriver, cfg.DB_URL)
	if err != nil {
		return err
	}
	if err := repositories.SeedDatabase(ctx, db, data); err != nil {
		return err
	}
	slog.Info("database seeded", "users", len(data.Users), "posts", len(data.Posts))
	return nil
}
