package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/dispatch"
)

var runInCmd = &cobra.Command{
	Use:   "run-in <env> CMD [ARG…]",
	Short: "Run a command inside a configured environment, rebuilding it first",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		envName := dispatch.ResolveEnvName(args[0])
		code, err := dispatch.RunIn(cmd.Context(), proj, envName, args[1:], dispatchOptions())
		if err != nil {
			return err
		}
		lastExitCode = code
		return nil
	},
}

func init() {
	runInCmd.Flags().BoolVarP(&debug, "debug", "D", false, "stream build output and echo runtime commands")
	runInCmd.Flags().BoolVarP(&skipRebuild, "skip-rebuild", "R", false, "skip the rebuild and cache-priming steps")
	runInCmd.Flags().BoolVarP(&tty, "tty", "T", false, "allocate a pseudo-terminal")
	runInCmd.Flags().StringVar(&tag, "tag", "", "image tag override (default: latest)")
	rootCmd.AddCommand(runInCmd)
}

func dispatchOptions() dispatch.Options {
	return dispatch.Options{
		Debug:       debug,
		SkipRebuild: skipRebuild,
		TTY:         tty,
		Tag:         tag,
		Runtime:     runtimeBin,
	}
}
