package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Manage named blocks of patterns",
	Long: `Manage a named group of patterns kept between marker comments:

  # >>> name >>>
  pattern
  # <<< name <<<

Setting a block replaces its previous content. Lines outside the markers are
never touched.`,
}

var blockSetCmd = &cobra.Command{
	Use:   "set <name> [pattern...]",
	Short: "Create or replace a named block",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}
		if err := f.SetBlock(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("  block  %s (%d patterns)\n", args[0], len(args)-1)
		return nil
	},
}

var blockRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a named block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openIgnoreFile()
		if err != nil {
			return err
		}
		removed, err := f.RemoveBlock(args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("  skip   %s (no such block)\n", args[0])
			return nil
		}
		fmt.Printf("  remove %s\n", args[0])
		return nil
	},
}

func init() {
	blockCmd.AddCommand(blockSetCmd, blockRemoveCmd)
	rootCmd.AddCommand(blockCmd)
}
