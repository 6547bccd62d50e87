package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/config"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/schema"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the commitviewer command tree. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:           "commitviewer",
		Short:         "Render the commit history of a GitHub repository as a web page",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.AddCommand(serve)
	cmd.AddCommand(newSchemaCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server on :PORT",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of one commit as returned by the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.Describe(model.CommitPayload{})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		},
	}
}

func serve(ctx context.Context) error {
	viperConfig, err := config.NewViper()
	if err != nil {
		return err
	}
	appConfig, err := config.Load(viperConfig)
	if err != nil {
		return err
	}
	logConfig, err := config.NewLogger(appConfig.Log)
	if err != nil {
		return err
	}
	defer logConfig.Close()
	log := logConfig.MainLogger

	r, err := config.Bootstrap(&config.BootstrapConfig{
		Config: appConfig,
		Log:    logConfig,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", appConfig.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	log.Info("Server stopped")
	return nil
}
