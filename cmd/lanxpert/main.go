package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/cli"
	"github.com/lanxpert/lanxpert-cli/internal/client/config"
	"github.com/lanxpert/lanxpert-cli/internal/client/crud"
	"github.com/lanxpert/lanxpert-cli/internal/client/localstore"
	"github.com/lanxpert/lanxpert-cli/internal/client/repositories/metadata"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
	"github.com/lanxpert/lanxpert-cli/internal/client/session"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// set via -ldflags at build time
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	fmt.Printf("LanXpert CLI %s (built %s)\n", buildVersion, buildDate)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := localstore.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("local store: %v", err)
	}
	defer db.Close()

	repo := metadata.NewSQLiteRepository(db)
	tokens := api.NewTokenManager(cfg.BaseURL, localstore.NewTokenVault(repo))
	if _, err := tokens.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore the stored session", "err", err)
	}

	// The 401 hook fires from inside the client, before the services that use
	// it exist, so it reaches the session store through the closure.
	var sess *session.Store
	client := api.New(cfg.BaseURL,
		&http.Client{Timeout: cfg.RequestTimeout},
		tokens,
		api.WithLogger(logger),
		api.WithUnauthorizedHook(func() {
			if sess != nil {
				sess.Invalidate()
			}
		}),
	)

	words := localstore.NewWordCache(repo)
	svc := services.New(client, tokens, words)
	sess = session.NewStore(svc.Users.Me, logger)

	browser, err := crud.NewEngine(client, crud.WithEngineLogger(logger))
	if err != nil {
		log.Fatalf("admin browser: %v", err)
	}

	app := cli.NewApp(cfg, svc, sess, browser, logger)
	app.Run(ctx)
}

func newLogger(level string) (logging.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"lanxpert.log"}
	zcfg.ErrorOutputPaths = []string{"lanxpert.log"}

	zl, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logging.NewZapLogger(zl), nil
}
