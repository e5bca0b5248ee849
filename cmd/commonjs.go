/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/umdgen/core/config"
	"github.com/tristendillon/umdgen/core/loader"
	"github.com/tristendillon/umdgen/core/logger"
	"github.com/tristendillon/umdgen/core/template_engine"
	"github.com/tristendillon/umdgen/core/watcher"
)

var (
	outputPath string
	watch      bool
)

var commonjsCmd = &cobra.Command{
	Use:   "commonjs",
	Short: "Generates the CommonJS loader fragment",
	Long: `Generates the CommonJS condition and loader code for the configured module.
Dependencies come from the "commonjs" list, member names from "commonjsmod".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("commonjs called")
		if err := renderCommonJS(cmd.OutOrStdout()); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchCommonJS(ctx, cmd.OutOrStdout())
	},
}

func renderCommonJS(out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	cjs := loader.NewCommonJS(cfg)
	data := template_engine.NewFragmentData(cfg.Name, cjs, cfg.NeededFunctions())
	engine := template_engine.NewTemplateEngine()

	if outputPath == "" {
		if err := engine.Render(template_engine.FragmentTemplate, out, data); err != nil {
			return fmt.Errorf("failed to generate fragment: %w", err)
		}
		return nil
	}
	if err := engine.RenderFile(template_engine.FragmentTemplate, outputPath, data); err != nil {
		return fmt.Errorf("failed to generate fragment: %w", err)
	}
	logger.Info("Generated %s for module %s", outputPath, cfg.Name)
	return nil
}

func watchCommonJS(ctx context.Context, out io.Writer) error {
	path := configPath
	if path == "" {
		found, err := config.FindDefault()
		if err != nil {
			return err
		}
		if found == "" {
			found = filepath.Join(".", config.DefaultFiles[0])
		}
		path = found
	}

	cw, err := watcher.NewConfigWatcher(path, func() error {
		return renderCommonJS(out)
	})
	if err != nil {
		return err
	}
	defer cw.Close()

	logger.Info("Watching %s for changes", cw.Path)
	return cw.Watch(ctx)
}

func init() {
	rootCmd.AddCommand(commonjsCmd)

	commonjsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the fragment to this file instead of stdout")
	commonjsCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever the config file changes")
}
