package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/config"
	"github.com/okarpenko/pitstop/internal/service"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Appointments service.AppointmentService
	Config       config.Config

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and confirmations are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pitstop" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pitstop",
		Short: "Car-service appointment booking",
	}

	root.AddCommand(
		newBookCmd(app),
		newListCmd(app),
		newBrowseCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newExportCmd(app),
		newServeCmd(app),
	)

	return root
}

// resolveAppointmentID resolves user input to a stored appointment ID,
// accepting either the full uuid or an unambiguous prefix.
func resolveAppointmentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("appointment ID is required")
	}

	res, err := app.Appointments.List(ctx, service.ListQuery{})
	if err != nil {
		return "", err
	}

	// 1. Exact match
	for _, a := range res.Appointments {
		if a.ID == input {
			return a.ID, nil
		}
	}

	// 2. Prefix match
	var matches []string
	for _, a := range res.Appointments {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("appointment not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("appointment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
