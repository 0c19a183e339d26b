package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ratio/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		// version runs without loading a configuration
		if cmd.Flags().Changed("output") {
			cfg.General.Output = output
		}

		info := version.Get()
		text := fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s",
			info, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
		return render(cmd, text, info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
