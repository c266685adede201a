package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/randalmurphal/commitlsp/health"
)

func createCheckhealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkhealth",
		Short: "Report how the issue tracker was set up",
		Long: `Walk through every step of the issue tracker setup and report each
decision: repository, remote, configuration, tracker type, credentials and
adapter. Finishes with a live ticket request.

Exits non-zero when any check reports an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recorder := &health.Recorder{}
			r := health.Multi{a.console(), recorder, health.NewLogReporter(a.logger)}

			it, err := a.openTracker(cmd.Context(), r)
			if err != nil {
				a.logger.Debug("issue tracker unavailable", "error", err)
			}

			if it != nil {
				tickets, err := it.RequestTicketInformation(cmd.Context())
				switch {
				case err != nil:
					health.Error(r, "request tickets", err.Error())
				case len(tickets) == 0:
					health.Warn(r, "request tickets", "Got empty list of tickets")
				default:
					example := tickets[0]
					health.OK(r, "request tickets", fmt.Sprintf("Example ticket: #%d '%s'", example.ID, example.Title))
				}
			}

			fmt.Fprintln(a.stdout)
			return recorder.Err()
		},
	}
}

// console returns a coloured console on a terminal, a plain one otherwise.
func (a *app) console() *health.Console {
	if f, ok := a.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return health.NewConsole(a.stdout)
	}
	return health.NewPlainConsole(a.stdout)
}
