// Package cli provides the hero command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zerubabel-J/HeroCraft/internal/config"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
)

type app struct {
	configOpts []config.Option
	cfg        config.Config
}

// NewRootCommand builds the hero command tree. Config options are passed to config.Load
// before any subcommand runs.
func NewRootCommand(opts ...config.Option) *cobra.Command {
	a := &app{configOpts: opts}

	root := &cobra.Command{
		Use:   "hero",
		Short: "Render and preview the product hero section",
		Long: `Render and preview the product hero section.

The hero is rendered in two forms, a template section and a component tree,
from the same settings. Presets are loaded from the embedded defaults and,
when HERO_PRESETS_DIR is set, from .yaml, .yml and .json files in that directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configOpts...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newParityCmd(a))
	root.AddCommand(newSchemaCmd())
	return root
}

// Execute runs the root command with the process configuration.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) loadPresets() (*presets.Store, error) {
	store, err := presets.Load(a.cfg.Presets.Dir, presets.WithSanitize(a.cfg.Presets.SanitizeDescriptions))
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	return store, nil
}
