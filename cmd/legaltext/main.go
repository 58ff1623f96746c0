package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"legaltext/internal/adapters/cli"
	"legaltext/internal/config"
	"legaltext/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	lg, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
	if err != nil {
		log.Fatalf("❌ Logger initialisation failed: %v", err)
	}

	app := cli.NewApp(cfg, lg)
	defer app.Close()

	if err := cli.NewRootCommand(app).ExecuteContext(context.Background()); err != nil {
		if msg := cli.DomainErrorMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		lg.Error("❌ Command failed", "error", err)
		app.Close()
		os.Exit(1)
	}
}
