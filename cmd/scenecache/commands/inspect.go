package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/scenecache/internal/app"
	"go.trai.ch/scenecache/internal/core/domain"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [paths...]",
		Short: "Show the cache artifact state of scene files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			statuses, err := c.app.Inspect(args)
			if err != nil {
				return err
			}
			return writeStatuses(cmd, statuses)
		},
	}
	addStalenessFlag(cmd)
	return cmd
}

func writeStatuses(cmd *cobra.Command, statuses []app.ArtifactStatus) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SOURCE\tSTATUS\tNODES\tDOCUMENTS\tSIZE\tPERSISTED\tFRESH")

	for _, s := range statuses {
		cache := s.Handle.Cache
		if s.Err != nil || cache == nil {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\tno\n", s.Path, errorStatus(s.Err))
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			s.Path,
			cache.Status,
			cache.Len(),
			cache.Documents,
			humanize.IBytes(uint64(max(cache.Source.Size, 0))),
			humanize.Time(s.Handle.DeserializedAt),
			yesNo(!s.Stale),
		)
	}
	return w.Flush()
}

func errorStatus(err error) string {
	switch {
	case err == nil:
		return "missing"
	case errors.Is(err, domain.ErrArtifactNotFound):
		return "not indexed"
	case errors.Is(err, domain.ErrArtifactCorrupt):
		return "corrupt"
	default:
		return "unreadable"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
