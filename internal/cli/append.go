package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appendMissing bool

var appendCmd = &cobra.Command{
	Use:   "append <pattern>...",
	Short: "Append patterns to the end of the ignore file",
	Long: `Append patterns to the end of the ignore file, one per line. The first
pattern always starts on a new line; no newline is written after the last.

With --missing, patterns already present in the file are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}

		added := args
		if appendMissing {
			added, err = f.AppendMissingPatterns(args)
		} else {
			err = f.AppendPatterns(args)
		}
		if err != nil {
			return err
		}

		for _, p := range added {
			fmt.Printf("  added  %s\n", p)
		}
		return nil
	},
}

func init() {
	appendCmd.Flags().BoolVar(&appendMissing, "missing", false, "only append patterns the file does not already contain")
	rootCmd.AddCommand(appendCmd)
}
