package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zerubabel-J/HeroCraft/internal/parity"
	"github.com/Zerubabel-J/HeroCraft/internal/presets"
)

var errParityMismatch = errors.New("renditions differ")

func newParityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parity [preset...]",
		Short: "Compare the section and component forms of presets",
		Long: `Compare the section and component forms of presets.

Without arguments every loaded preset is checked. The command exits non-zero
when any preset renders differently in the two forms.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadPresets()
			if err != nil {
				return err
			}

			var list []presets.Preset
			if len(args) == 0 {
				list = store.List()
			} else {
				for _, name := range args {
					p, err := store.Get(name)
					if err != nil {
						return err
					}
					list = append(list, p)
				}
			}

			ok := color.New(color.FgGreen, color.Bold)
			bad := color.New(color.FgRed, color.Bold)
			dim := color.New(color.FgHiBlack)
			out := cmd.OutOrStdout()

			mismatches := 0
			for _, p := range list {
				report, err := parity.Check(p.Settings)
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				if report.Equal {
					ok.Fprint(out, "PASS ")
					fmt.Fprintln(out, p.Name)
					continue
				}
				mismatches++
				bad.Fprint(out, "FAIL ")
				fmt.Fprintln(out, p.Name)
				for _, diff := range report.Diffs {
					dim.Fprintf(out, "  %s\n", diff)
				}
			}

			if mismatches > 0 {
				return fmt.Errorf("%d of %d presets: %w", mismatches, len(list), errParityMismatch)
			}
			return nil
		},
	}
}
