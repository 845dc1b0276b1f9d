package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sixtyseconds/showcase/internal/api"
	"github.com/sixtyseconds/showcase/pkg/catalog"
	"github.com/sixtyseconds/showcase/pkg/config"
	"github.com/sixtyseconds/showcase/pkg/email"
	"github.com/sixtyseconds/showcase/pkg/httpserver"
	"github.com/sixtyseconds/showcase/pkg/logger"
	"github.com/sixtyseconds/showcase/pkg/requestid"
	"github.com/sixtyseconds/showcase/pkg/rotation"
)

type appConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RotateAudiences bool          `env:"ROTATE_AUDIENCES" envDefault:"true"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	var emailCfg email.Config
	config.MustLoad(&emailCfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, "showcase"),
		logger.WithExtractor(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	content, err := catalog.Load()
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	dispatcher := email.New(emailCfg, email.WithLogger(log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rotor *rotation.Rotor
	if cfg.RotateAudiences && len(content.Audiences) > 0 {
		rotor = rotation.New(content.Audiences)
		if err := rotor.Start(ctx); err != nil {
			log.Error("failed to start audience rotation", "error", err)
			os.Exit(1)
		}
		defer rotor.Stop()
	}

	server := api.NewServer(content, dispatcher, rotor, log)
	defer server.Close()

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)

	log.Info("starting showcase server",
		slog.String("addr", cfg.Addr),
		slog.String("environment", cfg.Environment),
	)
	if err := srv.Run(ctx, server.Router()); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
