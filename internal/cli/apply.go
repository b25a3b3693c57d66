package cli

import (
	"fmt"

	"github.com/re-cinq/ignoredit/gitignore"
	"github.com/re-cinq/ignoredit/internal/fileutil"
	"github.com/spf13/cobra"
)

var configPath string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Make an ignore file match ignoredit.yaml",
	Long: `Read ignoredit.yaml (or --config) and bring the ignore file it names in
line with it:

  - patterns missing from the file are appended
  - every block is written between its markers

The ignore file is created if it does not exist. Running apply again without
changing the manifest leaves the file unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err := loadAndValidateConfig(path)
		if err != nil {
			return err
		}

		target := cfg.TargetPath()
		if ignorePath != "" || useExclude {
			if target, err = resolveIgnorePath(); err != nil {
				return err
			}
		}
		if err := fileutil.EnsureFile(target); err != nil {
			return err
		}
		f, err := gitignore.New(target)
		if err != nil {
			return err
		}

		added, err := f.AppendMissingPatterns(cfg.Patterns)
		if err != nil {
			return fmt.Errorf("applying patterns: %w", err)
		}
		for _, p := range added {
			fmt.Printf("  added  %s\n", p)
		}

		for _, b := range cfg.Blocks {
			if err := f.SetBlock(b.Name, b.Patterns); err != nil {
				return fmt.Errorf("applying block %q: %w", b.Name, err)
			}
			fmt.Printf("  block  %s\n", b.Name)
		}

		fmt.Printf("\n%s is up to date.\n", target)
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to manifest (default: nearest "+fileutil.ConfigFileName+")")
	rootCmd.AddCommand(applyCmd)
}
