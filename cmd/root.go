package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"agenda-system/appointment"
	"agenda-system/config"
	"agenda-system/database"
	"agenda-system/logging"

	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

// NewRootCmd builds the agenda command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "agenda",
		Short: "Personal appointment agenda",
		Long: `agenda keeps a list of personal appointments.

It can serve the list over HTTP or work on it directly from the shell.
The store is in memory unless the postgres backend is configured.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newListCmd(a),
		newAddCmd(a),
		newStatusCmd(a, "toggle", "Flip an appointment between pending and completed", appointment.Store.ToggleStatus),
		newStatusCmd(a, "cancel", "Mark an appointment as cancelled", appointment.Store.Cancel),
		newDeleteCmd(a),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore returns the configured store with its seed. The memory store is
// loaded with the seed before it is returned.
func (a *app) openStore(ctx context.Context) (appointment.Store, []appointment.Appointment, func(), error) {
	seed, err := appointment.ReadSeedFile(a.cfg.SeedFile)
	if err != nil {
		return nil, nil, nil, err
	}

	switch a.cfg.Backend {
	case config.BackendPostgres:
		db, err := database.Connect(a.cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("database connect: %w", err)
		}
		a.logger.Debug("using postgres backend")
		return appointment.NewAccessor(db, a.logger), seed, func() { _ = db.Close() }, nil
	default:
		store := appointment.NewMemoryStore(appointment.WithLogger(a.logger))
		if err := store.Load(ctx, seed); err != nil {
			return nil, nil, nil, err
		}
		a.logger.Debug("using memory backend", "seeded", len(seed))
		return store, seed, func() {}, nil
	}
}
