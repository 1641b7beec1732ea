package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/dispatch"
)

var rebuildCmd = &cobra.Command{
	Use:                "rebuild <image>[:<tag>] [ARGS…]",
	Short:              "Build an image under a tag, removing whatever image previously held it",
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		image := args[0]
		forwarded := args[1:]

		debugFlag, forwarded := extractDebugFlag(forwarded)
		return dispatch.Rebuild(cmd.Context(), image, forwarded, debugFlag, runtimeBin)
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

// extractDebugFlag pulls every --debug/-D out of forwarded args.
// rebuild disables cobra's own flag parsing (it forwards everything else
// verbatim to the runtime build), so this is the one flag it still
// recognises itself.
func extractDebugFlag(args []string) (bool, []string) {
	out := make([]string, 0, len(args))
	debug := false
	for _, a := range args {
		if a == "--debug" || a == "-D" {
			debug = true
			continue
		}
		out = append(out, a)
	}
	return debug, out
}
