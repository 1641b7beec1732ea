package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dock-cli/dock/src/clean"
)

var (
	cleanImages  bool
	cleanVolumes bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every image and cache volume a project's environments would produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		return clean.Run(cmd.Context(), proj, clean.Options{
			Images:  cleanImages,
			Volumes: cleanVolumes,
			Runtime: runtimeBin,
		})
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanImages, "images", false, "remove each environment's latest-tagged image")
	cleanCmd.Flags().BoolVar(&cleanVolumes, "volumes", false, "remove each environment's cache volumes")
	rootCmd.AddCommand(cleanCmd)
}
