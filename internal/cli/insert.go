package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insertLine int

var insertCmd = &cobra.Command{
	Use:   "insert --line N <pattern>...",
	Short: "Insert patterns before an existing line",
	Long: `Insert patterns, one per line, before the line currently at the zero-based
line number N. N must name an existing line; use append to add patterns
to the end of the file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}
		if err := f.InsertPatternsAtLineNo(args, insertLine); err != nil {
			return err
		}
		for i, p := range args {
			fmt.Printf("  line %d  %s\n", insertLine+i, p)
		}
		return nil
	},
}

func init() {
	insertCmd.Flags().IntVarP(&insertLine, "line", "l", 0, "zero-based line number to insert before")
	_ = insertCmd.MarkFlagRequired("line")
	rootCmd.AddCommand(insertCmd)
}
