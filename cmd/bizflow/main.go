package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	appauth "github.com/jhoicas/bizflow-client/internal/application/auth"
	"github.com/jhoicas/bizflow-client/internal/application/insight"
	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/application/session"
	infraai "github.com/jhoicas/bizflow-client/internal/infrastructure/ai"
	"github.com/jhoicas/bizflow-client/internal/infrastructure/localstore"
	"github.com/jhoicas/bizflow-client/internal/infrastructure/mock"
	"github.com/jhoicas/bizflow-client/internal/infrastructure/rest"
	"github.com/jhoicas/bizflow-client/internal/interfaces/cli"
	"github.com/jhoicas/bizflow-client/pkg/config"
	"github.com/jhoicas/bizflow-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	store, err := localstore.New(cfg.App.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}
	sessions := session.New(store, log)

	// Selección de la variante de acceso a datos al arranque: a partir de
	// aquí nadie vuelve a preguntar cuál de las dos hay detrás del puerto.
	var api ports.DataAccess
	switch cfg.API.Mode {
	case config.ModeMock:
		var gen ports.InsightGenerator
		if cfg.AI.GeminiAPIKey != "" {
			gen = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
		api, err = mock.New(store, cfg.Mock.Latency, gen, log)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente mock")
		}
		log.Info().Msg("modo mock: datos locales, credenciales sin validar")
	default:
		api = rest.New(rest.Config{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.API.Timeout,
		}, sessions, log)
		log.Debug().Str("base_url", cfg.API.BaseURL).Msg("modo rest")
	}

	app := cli.New(cli.Deps{
		API:      api,
		Sessions: sessions,
		Auth:     appauth.New(api, sessions, log),
		Insights: insight.New(api, cfg.AI.Timeout, log),
		Log:      log,
		Out:      os.Stdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}
