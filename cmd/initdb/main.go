// Command initdb creates the users and tasks collections of the configured
// store and prints their status. It is safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"taskhub/config"
	"taskhub/internal/domain/lifecycle"
	logs "taskhub/internal/infra/log"
	"taskhub/internal/infra/persistence"
	"taskhub/internal/usecase/impl"

	"github.com/pkg/errors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "initdb: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	inspector, closeStore, err := persistence.OpenInspector(ctx, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("Failed to close store", slog.Any("error", cerr))
		}
	}()

	status, err := impl.NewStoreService(inspector, logger).Initialize(ctx)
	if err != nil {
		return err
	}

	parts := make([]string, 0, len(status.Tables))
	for _, table := range status.Tables {
		parts = append(parts, fmt.Sprintf("%s=%s", table, status.Status[table]))
	}
	fmt.Printf("store %q initialized: %s\n", status.Driver, strings.Join(parts, " "))

	return nil
}
