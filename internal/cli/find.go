package cli

import (
	"fmt"

	"github.com/re-cinq/ignoredit/gitignore"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Print the zero-based line number of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}
		line, err := f.FindPattern(args[0])
		if err != nil {
			return err
		}
		if line == gitignore.NotFound {
			return fmt.Errorf("pattern %q not found in %s", args[0], f.Filename())
		}
		fmt.Println(line)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
