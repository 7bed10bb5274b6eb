package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"agenda-system/appointment"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List appointments, optionally filtered by title or description",
		Example: `  agenda list
  agenda list médica`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			items, err := store.Filter(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No appointments found")
				return nil
			}
			printTable(out, items)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var req appointment.CreateRequest
	var typ string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an appointment",
		Example: `  agenda add --title "Dentista" --date 2024-02-01 --time 09:00 --type health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			req.Type = appointment.Type(typ)
			created, err := store.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created appointment %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().StringVar(&req.Date, "date", "", "date (required)")
	cmd.Flags().StringVar(&req.Time, "time", "", "time (required)")
	cmd.Flags().StringVar(&typ, "type", string(appointment.TypePersonal), "personal, work, health or other")
	return cmd
}

type statusFunc func(appointment.Store, context.Context, string) (*appointment.Appointment, error)

func newStatusCmd(a *app, use, short string, change statusFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			appt, err := change(store, cmd.Context(), args[0])
			if err != nil {
				return notFound(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", appt.ID, appt.Status)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return notFound(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func notFound(id string, err error) error {
	if errors.Is(err, appointment.ErrNotFound) {
		return fmt.Errorf("no appointment with id %s", id)
	}
	return err
}

func printTable(out io.Writer, items []appointment.Appointment) {
	fmt.Fprintf(out, "%-14s %-32s %-11s %-6s %-9s %-10s\n", "ID", "TITLE", "DATE", "TIME", "TYPE", "STATUS")
	fmt.Fprintln(out, strings.Repeat("-", 87))
	for _, it := range items {
		title := it.Title
		if r := []rune(title); len(r) > 32 {
			title = string(r[:29]) + "..."
		}
		fmt.Fprintf(out, "%-14s %-32s %-11s %-6s %-9s %-10s\n", it.ID, title, it.Date, it.Time, it.Type, it.Status)
	}
}
