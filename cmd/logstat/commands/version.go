package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/logstat/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of logstat`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "logstat %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
