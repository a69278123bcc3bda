package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atlas/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the persisted theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.themes.Current())
				return nil
			}

			pref := theme.Preference(args[0])
			if !pref.Valid() {
				return fmt.Errorf("unknown theme %q, expected light or dark", args[0])
			}

			a.themes.Apply(pref)
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", pref)
			return nil
		},
	}

	return cmd
}
