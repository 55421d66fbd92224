// Package commands implements the CLI commands for scenecache.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/scenecache/internal/app"
	"go.trai.ch/scenecache/internal/build"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for scenecache.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(settings domain.Settings)
	Index(ctx context.Context, args []string, opts app.IndexOptions) ([]app.IndexResult, error)
	Inspect(args []string) ([]app.ArtifactStatus, error)
	Watch(ctx context.Context, args []string, opts app.IndexOptions) error
	Clean(args []string) error
	GetLocalAnchorUsages(anchor uint64) (int, error)
	GetGuidUsages(guid string) (int, error)
	GetComponentsFor(gameObjectAnchor uint64) ([]uint64, error)
}

// LogConfigurer is implemented by loggers whose output can be adjusted at runtime.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetLevel(level domain.LogLevel)
}

// New creates a new CLI instance with the given app.
func New(a Application, loader ports.ConfigLoader, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scenecache",
		Short:         "Index Unity scene files into reusable node caches",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default: discover "+domain.ConfigFileName+")")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	c := &CLI{
		app:     a,
		loader:  loader,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configure resolves the effective settings for cmd and applies them to the
// app and the logger. Precedence is defaults, then the config file, then flags.
func (c *CLI) configure(cmd *cobra.Command) error {
	settings, err := c.loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &settings); err != nil {
		return err
	}

	if lc, ok := c.logger.(LogConfigurer); ok {
		lc.SetJSON(settings.LogFormat == domain.LogFormatJSON)
		lc.SetLevel(settings.LogLevel)
	}
	c.app.Configure(settings)
	return nil
}

func (c *CLI) loadSettings(cmd *cobra.Command) (domain.Settings, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return c.loader.LoadFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
	}
	return c.loader.Load(cwd)
}
