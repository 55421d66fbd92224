package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/scenecache/internal/app"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [paths...]",
		Short: "Build or refresh the cache artifacts of scene files",
		Long: "Index parses every scene file matched by the given files, directories or glob patterns " +
			"and writes its cache artifact next to it. Artifacts that are still fresh are reused.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			if err := c.configure(cmd); err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			results, err := c.app.Index(cmd.Context(), args, app.IndexOptions{Force: force})
			if len(results) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), summarize(results))
			}
			return err
		},
	}
	addIndexFlags(cmd)
	return cmd
}

// summarize renders the outcome counts of an index run, e.g. "2 built, 1 reused".
func summarize(results []app.IndexResult) string {
	order := []app.Outcome{app.OutcomeBuilt, app.OutcomeReused, app.OutcomeCancelled, app.OutcomeSkipped, app.OutcomeFailed}
	counts := make(map[app.Outcome]int, len(order))
	for _, r := range results {
		counts[r.Outcome]++
	}

	parts := make([]string, 0, len(order))
	for _, o := range order {
		if counts[o] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[o], o))
		}
	}
	return strings.Join(parts, ", ")
}
