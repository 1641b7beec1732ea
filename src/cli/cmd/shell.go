package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/dispatch"
)

var shellCmd = &cobra.Command{
	Use:   "shell [env]",
	Short: "Run a configured environment's shell, defaulting to default_shell_env",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envName := proj.DefaultShellEnv
		if len(args) == 1 {
			envName = dispatch.ResolveEnvName(args[0])
		}
		if envName == "" {
			return &noEnvSelected{}
		}
		code, err := dispatch.Shell(cmd.Context(), proj, envName, dispatchOptions())
		if err != nil {
			return err
		}
		lastExitCode = code
		return nil
	},
}

func init() {
	shellCmd.Flags().BoolVarP(&debug, "debug", "D", false, "stream build output and echo runtime commands")
	shellCmd.Flags().BoolVarP(&skipRebuild, "skip-rebuild", "R", false, "skip the rebuild and cache-priming steps")
	shellCmd.Flags().StringVar(&tag, "tag", "", "image tag override (default: latest)")
	rootCmd.AddCommand(shellCmd)
}

// noEnvSelected is returned when `dock shell` is invoked with no
// argument and the project sets no default_shell_env.
type noEnvSelected struct{}

func (e *noEnvSelected) Error() string {
	return "no environment given and no default_shell_env configured"
}

func (e *noEnvSelected) ExitCode() int { return 1 }
