package config

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/http/controller"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/http/route"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/http/view"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/service"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/usecase"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/utils"
)

type BootstrapConfig struct {
	Config *AppConfig
	Log    *LogConfig
	// Client is used for upstream calls; nil builds one from HTTPTimeout.
	Client *http.Client
}

func Bootstrap(config *BootstrapConfig) (*chi.Mux, error) {
	cfg := config.Config
	logConfig := config.Log

	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	// The breaker is the only state shared across requests.
	var breaker service.Breaker
	if cfg.Breaker.Enabled {
		breaker = utils.NewCircuitBreaker("github-commits", cfg.Breaker, logConfig.MainLogger)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "load templates")
	}

	// Initialize usecases
	commitUsecase := usecase.NewCommitUsecase(logConfig.CommitLogger, cfg.GitHub, client, breaker)

	// Initialize controllers
	errorHandler := controller.NewErrorHandler(logConfig.HTTPLogger, cfg.ExposeErrors)
	commitController := controller.NewCommitController(logConfig.CommitLogger, commitUsecase, renderer,
		cfg.GitHub.Owner, cfg.GitHub.Repo)

	// Setup routes
	route := route.RouteConfig{
		App:              chi.NewRouter(),
		Log:              logConfig.HTTPLogger,
		ErrorHandler:     errorHandler,
		CommitController: commitController,
	}

	return route.Setup(), nil
}
