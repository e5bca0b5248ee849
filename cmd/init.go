/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/umdgen/core/config"
	"github.com/tristendillon/umdgen/core/logger"
	"github.com/tristendillon/umdgen/core/template_engine"
)

var (
	force    bool
	initName string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a new umdgen config",
	Long: `Writes a starter umd.yaml into dir (default: the working directory).
The module name defaults to the directory name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		target := filepath.Join(dir, config.DefaultFiles[0])
		if _, err := os.Stat(target); err == nil {
			if !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", target)
			}
			logger.Debug("%s already exists. Overwriting.", target)
		}

		name := initName
		if name == "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", dir, err)
			}
			name = filepath.Base(abs)
		}

		engine := template_engine.NewTemplateEngine()
		initData := map[string]string{"Name": name}
		if err := engine.RenderFile(template_engine.ConfigTemplate, target, initData); err != nil {
			return fmt.Errorf("failed to generate config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %s\n", target)
		fmt.Fprintf(cmd.OutOrStdout(), "Next Steps:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  - add dependencies under depends.commonjs\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  - umdgen commonjs -c %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite an existing config")
	initCmd.Flags().StringVar(&initName, "name", "", "Module name (defaults to the directory name)")
}
