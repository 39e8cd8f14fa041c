package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/yaml.v3"

	"github.com/myrjola/fitfokus/internal/envstruct"
	"github.com/myrjola/fitfokus/internal/errors"
	"github.com/myrjola/fitfokus/internal/identity"
	"github.com/myrjola/fitfokus/internal/logging"
	"github.com/myrjola/fitfokus/internal/metrics"
	"github.com/myrjola/fitfokus/internal/sqlite"
	"github.com/myrjola/fitfokus/internal/workout"
)

type application struct {
	logger         *slog.Logger
	db             *sqlite.Database
	sessionManager *scs.SessionManager
	identity       *identity.Handler
	workoutService *workout.Service
	metrics        *metrics.Manager
	registry       *prometheus.Registry
	requestTimeout time.Duration
}

type config struct {
	// ConfigFile is an optional YAML file read before the environment. Environment variables win.
	ConfigFile string `yaml:"-" env:"FITFOKUS_CONFIG_FILE" envDefault:""`
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `yaml:"addr" env:"FITFOKUS_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `yaml:"sqlite_url" env:"FITFOKUS_SQLITE_URL" envDefault:"./fitfokus.sqlite3"`
	// PlanStrategy selects exercises either "random" or by "template".
	PlanStrategy string `yaml:"plan_strategy" env:"FITFOKUS_PLAN_STRATEGY" envDefault:"random"`
	// SecureCookies marks the session cookie Secure. Only disable it for local plain HTTP development.
	SecureCookies bool `yaml:"secure_cookies" env:"FITFOKUS_SECURE_COOKIES" envDefault:"true"`
	// SessionLifetime is how long an anonymous identity survives without being used.
	SessionLifetime time.Duration `yaml:"session_lifetime" env:"FITFOKUS_SESSION_LIFETIME" envDefault:"720h"`
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"FITFOKUS_REQUEST_TIMEOUT" envDefault:"2s"`
}

// loadConfig applies defaults and the environment, then the optional YAML file named by FITFOKUS_CONFIG_FILE, and
// finally the environment again so that set variables win over the file.
func loadConfig(lookupEnv func(string) (string, bool)) (config, error) {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return config{}, errors.Wrap(err, "populate config")
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return config{}, errors.Wrap(err, "read config file", slog.String("path", cfg.ConfigFile))
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, errors.Wrap(err, "parse config file", slog.String("path", cfg.ConfigFile))
	}
	if err = envstruct.Overlay(&cfg, lookupEnv); err != nil {
		return config{}, errors.Wrap(err, "overlay environment")
	}
	return cfg, nil
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	cfg, err := loadConfig(lookupEnv)
	if err != nil {
		return err
	}
	strategy, err := workout.ParseSelectionStrategy(cfg.PlanStrategy)
	if err != nil {
		return errors.Wrap(err, "parse plan strategy")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sessionManager := initializeSessionManager(db, cfg)
	workoutService := workout.NewService(db, logger, strategy, nil)

	app := application{
		logger:         logger,
		db:             db,
		sessionManager: sessionManager,
		identity:       identity.New(logger, sessionManager, workoutService),
		workoutService: workoutService,
		metrics:        metrics.NewManager("fitfokus", "web", registry),
		registry:       registry,
		requestTimeout: cfg.RequestTimeout,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database, cfg config) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.IdleTimeout = cfg.SessionLifetime
	sessionManager.Cookie.Name = "fitfokus_session"
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = cfg.SecureCookies
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
