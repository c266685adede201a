package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	clierrors "github.com/randalmurphal/commitlsp/errors"
	"github.com/randalmurphal/commitlsp/health"
)

func createTicketsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tickets",
		Short: "List the open tickets assigned to you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := a.openTracker(cmd.Context(), health.NewLogReporter(a.logger))
			if err != nil {
				return err
			}

			if _, err := it.RequestTicketInformation(cmd.Context()); err != nil {
				return err
			}
			for _, t := range it.Tickets() {
				fmt.Fprintf(a.stdout, "#%d %s\n", t.ID, t.Title)
			}
			return nil
		},
	}
}

func createTicketCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ticket <id>",
		Short: "Show a single ticket",
		Example: `  commit-lsp ticket 42
  commit-lsp ticket --remote upstream 1337`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid ticket id %q: must be a positive number", args[0])
			}

			it, err := a.openTracker(cmd.Context(), health.NewLogReporter(a.logger))
			if err != nil {
				return err
			}

			t, found, err := it.Ticket(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: #%d", clierrors.ErrTicketNotFound, id)
			}

			fmt.Fprintf(a.stdout, "#%d %s\n", t.ID, t.Title)
			if t.Body != "" {
				fmt.Fprintf(a.stdout, "\n%s\n", t.Body)
			}
			return nil
		},
	}
}
