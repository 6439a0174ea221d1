package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/op/go-logging"

	"github.com/Wessamoreira/ambiente-precificador/internal/apiclient"
	"github.com/Wessamoreira/ambiente-precificador/internal/cache"
	"github.com/Wessamoreira/ambiente-precificador/internal/config"
	"github.com/Wessamoreira/ambiente-precificador/internal/httpapi"
	"github.com/Wessamoreira/ambiente-precificador/internal/service"
	"github.com/Wessamoreira/ambiente-precificador/internal/session"
	"github.com/Wessamoreira/ambiente-precificador/internal/store"
	"github.com/Wessamoreira/ambiente-precificador/internal/store/memory"
	pgstore "github.com/Wessamoreira/ambiente-precificador/internal/store/postgres"
	"github.com/Wessamoreira/ambiente-precificador/internal/store/remote"
)

var log = logging.MustGetLogger("log")

// InitLogger parses the go-logging level name and installs a stdout backend
// at that level.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	cfg := config.Load()
	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("invalid LOG_LEVEL: %v", err)
	}
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	closers := make([]func() error, 0, 2)

	snapshots := cache.SnapshotCache(cache.NoopSnapshotCache{})
	var sessionStore session.Store = session.NewFileStore(cfg.SessionFile)
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisSnapshotCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warningf("redis unavailable (%v), using in-process cache and %s", err, cfg.SessionFile)
			_ = redisCache.Close()
			snapshots = cache.NewMemorySnapshotCache()
		} else {
			snapshots = redisCache
			sessionStore = session.NewRedisStore(redisCache.Client(), "")
			closers = append(closers, redisCache.Close)
			log.Info("cache: redis, session: redis")
		}
	} else {
		snapshots = cache.NewMemorySnapshotCache()
		log.Infof("cache: memory, session: %s", cfg.SessionFile)
	}

	sess := session.NewManager(ctx, sessionStore)
	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithTokenSource(sess),
	)

	var repo store.Repository
	switch cfg.DataSource {
	case config.SourcePostgres:
		pg, err := pgstore.New(ctx, cfg.DatabaseURL, cfg.OwnerID)
		if err != nil {
			log.Fatalf("postgres unavailable (%v) and DATA_SOURCE is postgres; refusing to start with another source", err)
		}
		repo = pg
		closers = append(closers, pg.Close)
		log.Info("repository: postgres")
	case config.SourceMemory:
		repo = memory.NewSeeded()
		log.Info("repository: in-memory demo data")
	default:
		repo = remote.New(client)
		log.Infof("repository: remote api %s", client.BaseURL())
	}

	svc := service.New(repo, snapshots, cfg.CacheTTL)
	api := httpapi.New(svc, client, sess, httpapi.Options{
		AllowedOrigin: cfg.AllowedOrigin,
		AuthSecret:    cfg.AuthSecret,
	})

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.APITimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("PrecificaPro dashboard listening on %s", cfg.Address())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Errorf("close error: %v", err)
		}
	}

	log.Info("server stopped")
}

func validateConfig(cfg config.Config) error {
	switch cfg.DataSource {
	case config.SourceRemote:
		if cfg.APIBaseURL == "" {
			return fmt.Errorf("API_BASE_URL must be set for the remote source")
		}
	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the postgres source")
		}
		if cfg.OwnerID == "" {
			return fmt.Errorf("OWNER_ID must be set for the postgres source")
		}
	case config.SourceMemory:
	default:
		return fmt.Errorf("DATA_SOURCE %q is not one of remote, postgres, memory", cfg.DataSource)
	}
	if cfg.DataSource != config.SourceRemote && cfg.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET must be set for the %s source", cfg.DataSource)
	}
	if cfg.AuthSecret != "" && len(cfg.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be at least 32 characters when set")
	}
	if cfg.SessionFile == "" && cfg.RedisAddr == "" {
		return fmt.Errorf("SESSION_FILE must be set when REDIS_ADDR is not")
	}
	return nil
}
