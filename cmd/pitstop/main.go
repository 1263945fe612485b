package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/okarpenko/pitstop/internal/cli"
	"github.com/okarpenko/pitstop/internal/config"
	"github.com/okarpenko/pitstop/internal/repository"
	"github.com/okarpenko/pitstop/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine file path: env var or default ~/.pitstop/appointments.csv
	filePath := os.Getenv("PITSTOP_FILE")
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		filePath = filepath.Join(home, ".pitstop", "appointments.csv")
	}

	repo := repository.NewCSVAppointmentRepo(filePath)

	app := &cli.App{
		Appointments: service.NewAppointmentService(repo),
		Config:       config.Load(),
	}

	// Detect interactive terminal so forms and confirmations are only
	// offered when there is someone to answer them.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
