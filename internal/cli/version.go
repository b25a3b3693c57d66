package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of ignoredit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ignoredit %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
