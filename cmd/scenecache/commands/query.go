package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query indexed scene data",
	}
	cmd.AddCommand(c.newAnchorUsagesCmd())
	cmd.AddCommand(c.newGuidUsagesCmd())
	cmd.AddCommand(c.newComponentsCmd())
	return cmd
}

func (c *CLI) newAnchorUsagesCmd() *cobra.Command {
	var anchor uint64
	cmd := &cobra.Command{
		Use:   "anchor-usages",
		Short: "Count references to a local file anchor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := c.app.GetLocalAnchorUsages(anchor)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&anchor, "anchor", 0, "Local file anchor (fileID)")
	_ = cmd.MarkFlagRequired("anchor")
	return cmd
}

func (c *CLI) newGuidUsagesCmd() *cobra.Command {
	var guid string
	cmd := &cobra.Command{
		Use:   "guid-usages",
		Short: "Count references to an asset GUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := c.app.GetGuidUsages(guid)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
	cmd.Flags().StringVar(&guid, "guid", "", "Asset GUID")
	_ = cmd.MarkFlagRequired("guid")
	return cmd
}

func (c *CLI) newComponentsCmd() *cobra.Command {
	var anchor uint64
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the component anchors of a game object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			anchors, err := c.app.GetComponentsFor(anchor)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range anchors {
				_, _ = fmt.Fprintln(out, a)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&anchor, "game-object", 0, "Local file anchor of the game object")
	_ = cmd.MarkFlagRequired("game-object")
	return cmd
}
