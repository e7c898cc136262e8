package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"postsite/app/internal/config"
	apphttp "postsite/app/internal/http"
	applog "postsite/app/internal/log"
	"postsite/app/internal/posts"
	"postsite/app/internal/site"
)

func main() {
	app := &cli.App{
		Name:  "postsite",
		Usage: "Pre-render and serve post viewing pages",
		Commands: []*cli.Command{
			buildCommand,
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

var buildCommand = &cli.Command{
	Name:  "build",
	Usage: "Pre-render the static post set into the output directory",
	Action: func(c *cli.Context) error {
		ctx, stop := signalContext()
		defer stop()

		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.flush()

		if err := env.exporter.Export(ctx); err != nil {
			return eris.Wrap(err, "exporting static pages")
		}

		env.logger.WithField("output_dir", env.cfg.OutputDir).Info("static export complete")
		return nil
	},
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Pre-render the static set, then serve pages with on-demand fallback",
	Action: func(c *cli.Context) error {
		ctx, stop := signalContext()
		defer stop()

		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.flush()

		if err := env.exporter.Export(ctx); err != nil {
			return eris.Wrap(err, "exporting static pages")
		}

		transport, err := apphttp.NewServer(apphttp.Options{
			Renderer:  env.renderer,
			Exporter:  env.exporter,
			SourceURL: env.client.BaseURL(),
			Logger:    env.logger,
			SentryHub: env.sentryHub,
		})
		if err != nil {
			return eris.Wrap(err, "initialising http transport")
		}

		httpServer := &stdhttp.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", env.cfg.ServerPort),
			Handler: transport.Handler(),
		}

		env.logger.WithFields(logrus.Fields{
			"addr": httpServer.Addr,
		}).Info("starting http server")

		serverErrCh := make(chan error, 1)
		go func() {
			err := httpServer.ListenAndServe()
			if err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
				serverErrCh <- err
			} else {
				serverErrCh <- nil
			}
		}()

		select {
		case <-ctx.Done():
			env.logger.Info("shutdown signal received")
		case err := <-serverErrCh:
			if err != nil {
				return eris.Wrap(err, "http server error")
			}
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), env.cfg.ShutdownGrace)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "shutting down http server")
		}

		env.logger.Info("http server shut down cleanly")
		return nil
	},
}

type environment struct {
	cfg       *config.Config
	logger    *logrus.Logger
	sentryHub *sentry.Hub
	flush     func()
	client    *posts.Client
	renderer  *site.Renderer
	exporter  *site.Exporter
}

func bootstrap() (*environment, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, eris.Wrap(err, "failure loading configuration")
	}

	logger, err := applog.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, eris.Wrap(err, "failure initialising logger")
	}

	hub, flush, err := applog.InitSentry(logger, applog.SentrySettings{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		return nil, eris.Wrap(err, "failure initialising sentry")
	}

	client := posts.NewClient(posts.ClientOptions{
		BaseURL: cfg.SourceBaseURL,
		Logger:  logger,
	})

	renderer, err := site.NewRenderer(client, logger)
	if err != nil {
		return nil, eris.Wrap(err, "initialising renderer")
	}

	exporter, err := site.NewExporter(renderer, cfg.OutputDir, logger)
	if err != nil {
		return nil, eris.Wrap(err, "initialising exporter")
	}

	return &environment{
		cfg:       cfg,
		logger:    logger,
		sentryHub: hub,
		flush:     flush,
		client:    client,
		renderer:  renderer,
		exporter:  exporter,
	}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
