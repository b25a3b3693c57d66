package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var containsQuiet bool

var containsCmd = &cobra.Command{
	Use:   "contains <pattern>",
	Short: "Report whether the ignore file contains a pattern",
	Long: `Print true or false depending on whether a line of the ignore file is
exactly the given pattern. With --quiet nothing is printed and the exit
status is 1 when the pattern is absent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}
		ok, err := f.ContainsPattern(args[0])
		if err != nil {
			return err
		}
		if containsQuiet {
			if !ok {
				os.Exit(1)
			}
			return nil
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	containsCmd.Flags().BoolVarP(&containsQuiet, "quiet", "q", false, "print nothing; signal the result through the exit status")
	rootCmd.AddCommand(containsCmd)
}
