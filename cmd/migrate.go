package cmd

import (
	"errors"
	"fmt"

	"agenda-system/appointment"
	"agenda-system/config"
	"agenda-system/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the appointments table in PostgreSQL",
		Long: `Create the appointments table if it does not exist.

With --seed the table is then replaced by the configured seed set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Backend != config.BackendPostgres {
				return errors.New("migrate needs the postgres backend")
			}

			db, err := database.Connect(a.cfg.PostgresDSN)
			if err != nil {
				return fmt.Errorf("database connect: %w", err)
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			a.logger.Info("schema up to date")

			if !seed {
				return nil
			}
			items, err := appointment.ReadSeedFile(a.cfg.SeedFile)
			if err != nil {
				return err
			}
			if err := appointment.NewAccessor(db, a.logger).Load(cmd.Context(), items); err != nil {
				return err
			}
			a.logger.Info("seed loaded", "count", len(items))
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "replace the table contents with the seed set")
	return cmd
}
