package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scenecache/internal/app"
	"go.trai.ch/scenecache/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Index scene files and re-index them when they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Watch(cmd.Context(), args, app.IndexOptions{Force: force})
		},
	}
	addIndexFlags(cmd)
	cmd.Flags().Duration("debounce", domain.DefaultDebounce, "Quiet period before changed sources are re-indexed")
	return cmd
}
