package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/internal/config"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the lvbalance CLI with os.Args on the standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Command output goes to out; logs
// go to errOut.
//
// The persistent pre-run loads the configuration (--config, then the
// environment), validates it and attaches both the config and a logger to
// the command context.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
		envFile    string
	)

	root := &cobra.Command{
		Use:           "lvbalance",
		Short:         "lvbalance checks signed graphs for structural balance",
		Long:          `lvbalance decides whether a signed graph of positive and negative relations can be split into two factions, comparing the triangle, cycle and super-node methods.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			var envFiles []string
			if envFile != "" {
				envFiles = append(envFiles, envFile)
			}
			if err := cfg.ApplyEnv(envFiles...); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.LogLevel()
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(errOut, level)
			logger.Debug("config loaded", "path", configPath, "strategies", cfg.Analysis.Strategies)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("lvbalance %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file consulted for LVBALANCE_* variables (default .env)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newTrianglesCmd())
	root.AddCommand(newCyclesCmd())
	root.AddCommand(newSuperNodesCmd())
	root.AddCommand(newTriadsCmd())
	root.AddCommand(newEvolveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSamplesCmd())

	return root
}
