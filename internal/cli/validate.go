package cli

import (
	"fmt"
	"os"

	"github.com/re-cinq/ignoredit/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate ignoredit.yaml and report errors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Println("valid")
			return nil
		}

		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to manifest (default: nearest ignoredit.yaml)")
	rootCmd.AddCommand(validateCmd)
}
