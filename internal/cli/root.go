package cli

import (
	"github.com/spf13/cobra"
)

var (
	ignorePath string
	useExclude bool
	createFile bool
	Version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "ignoredit",
	Short:        "Find, append and insert patterns in .gitignore-style files",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ignorePath, "file", "f", "", "ignore file to edit (default: .gitignore at the repository root)")
	rootCmd.PersistentFlags().BoolVar(&useExclude, "exclude", false, "edit the repository's .git/info/exclude instead of .gitignore")
	rootCmd.PersistentFlags().BoolVar(&createFile, "create", false, "create the ignore file if it does not exist")
	rootCmd.MarkFlagsMutuallyExclusive("file", "exclude")
}

func Execute() error {
	return rootCmd.Execute()
}
