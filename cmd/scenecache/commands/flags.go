package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/zerr"
)

func addIndexFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false, "Rebuild every source regardless of its artifact")
	cmd.Flags().IntP("jobs", "j", 0, "Number of sources indexed in parallel (default: number of CPUs)")
	cmd.Flags().Int("check-frequency", 0, "Documents parsed between two interrupt checks (default: 100)")
	addStalenessFlag(cmd)
}

func addStalenessFlag(cmd *cobra.Command) {
	cmd.Flags().String("staleness", "", "Staleness policy: mtime, checksum or always (default: mtime)")
}

// applyFlags overrides settings with every flag set on the command line.
func applyFlags(cmd *cobra.Command, s *domain.Settings) error {
	flags := cmd.Flags()

	if flags.Changed("log-json") {
		if enabled, _ := flags.GetBool("log-json"); enabled {
			s.LogFormat = domain.LogFormatJSON
		} else {
			s.LogFormat = domain.LogFormatText
		}
	}

	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		s.LogLevel = domain.ParseLogLevel(level)
	}

	if flags.Changed("jobs") {
		jobs, _ := flags.GetInt("jobs")
		if jobs < 1 {
			return zerr.With(domain.ErrInvalidJobs, "jobs", jobs)
		}
		s.Jobs = jobs
	}

	if flags.Changed("check-frequency") {
		frequency, _ := flags.GetInt("check-frequency")
		if frequency < 1 {
			return zerr.With(domain.ErrInvalidCheckFrequency, "check_frequency", frequency)
		}
		s.CheckFrequency = frequency
	}

	if flags.Changed("staleness") {
		name, _ := flags.GetString("staleness")
		mode, err := domain.ParseStalenessMode(name)
		if err != nil {
			return err
		}
		s.Staleness = mode
	}

	if flags.Changed("debounce") {
		debounce, _ := flags.GetDuration("debounce")
		if debounce < 0 {
			return zerr.With(domain.ErrInvalidDebounce, "debounce", debounce.String())
		}
		s.Debounce = debounce
	}

	return nil
}
