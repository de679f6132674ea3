package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/controller/server"
	"github.com/m-mizutani/minuta/pkg/usecase/notes"
	"github.com/m-mizutani/minuta/pkg/usecase/project"
	"github.com/m-mizutani/minuta/pkg/usecase/search"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		cfg  config
		addr string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Usage:       "Listen address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("MINUTA_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, geminiFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.New(cfg.logLevel, cfg.logFormat, os.Stdout)
			logging.SetDefault(logger)

			fc, err := cfg.loadFile()
			if err != nil {
				return err
			}

			gemini, err := cfg.newGemini(ctx, fc)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			notesUC := notes.New(repo, gemini, notes.WithLanguages(cfg.languages(fc)))
			projectUC := project.New(gemini)
			searchUC := search.New(gemini)

			srv, err := server.New(notesUC, projectUC, searchUC, logger, &server.Config{Addr: addr})
			if err != nil {
				return goerr.Wrap(err, "failed to create server")
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return goerr.Wrap(err, "server stopped")
			case <-sigCtx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}
