package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zerubabel-J/HeroCraft/internal/hero"
)

const (
	formSection   = "section"
	formComponent = "component"
)

func newRenderCmd(a *app) *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "render <preset>",
		Short: "Print the hero markup for a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadPresets()
			if err != nil {
				return err
			}
			p, err := store.Get(args[0])
			if err != nil {
				return err
			}
			return renderForm(cmd.OutOrStdout(), form, p.Settings)
		},
	}
	cmd.Flags().StringVar(&form, "form", formSection, "markup form: section or component")
	return cmd
}

func renderForm(w io.Writer, form string, settings hero.Settings) error {
	switch form {
	case formSection:
		if err := hero.RenderSection(w, settings); err != nil {
			return err
		}
	case formComponent:
		if err := hero.Component(settings).Render(w); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown form %q (want %s or %s)", form, formSection, formComponent)
	}
	_, err := fmt.Fprintln(w)
	return err
}
