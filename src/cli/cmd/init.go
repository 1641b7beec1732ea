package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/templates"
)

const defaultTemplatesSource = "dir:."

var (
	initFrom  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Scaffold a new project's dock.yaml and Dockerfiles from a templates source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		raw := initFrom
		if raw == "" {
			raw = os.Getenv("DOCK_DEFAULT_TEMPLATES_SOURCE")
		}
		if raw == "" {
			raw = defaultTemplatesSource
		}

		source, err := templates.Parse(raw)
		if err != nil {
			return err
		}
		return templates.Materialize(source, dir, templates.Options{Force: initForce})
	},
}

func init() {
	initCmd.Flags().StringVar(&initFrom, "from", "", "templates source (default: $DOCK_DEFAULT_TEMPLATES_SOURCE)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "proceed even if DIR has a dock.yaml (existing files are not overwritten)")
	rootCmd.AddCommand(initCmd)
}
