package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Remove the cache artifacts of scene files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			return c.app.Clean(args)
		},
	}
}
