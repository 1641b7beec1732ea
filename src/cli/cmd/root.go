package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/config"
	"github.com/dock-cli/dock/src/exitcode"
	"github.com/dock-cli/dock/src/output"
)

var (
	cfgFileName string
	debug       bool
	skipRebuild bool
	tty         bool
	tag         string
	runtimeBin  string

	proj *config.Project

	// lastExitCode carries the dispatched child's exit code across a
	// successful RunE return, since cobra only propagates errors.
	lastExitCode int
)

var rootCmd = &cobra.Command{
	Use:   "dock",
	Short: "Run commands inside declaratively configured container environments",
	Long:  "dock uses container images as reproducible command-execution environments, rebuilding and running them from a dock.yaml.",
	// Bare `dock` is equivalent to `dock shell`.
	RunE: func(cmd *cobra.Command, args []string) error {
		return shellCmd.RunE(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "init", "rebuild":
			return nil
		}
		var err error
		proj, err = config.Load(cfgFileName, "")
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFileName, "config", "", "config file name (default: dock.yaml)")
	rootCmd.PersistentFlags().StringVar(&runtimeBin, "runtime", "", "container runtime binary (default: docker)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return lastExitCode
	}
	output.NewPrinter().Error(err, debug)
	return exitcode.Of(err)
}
