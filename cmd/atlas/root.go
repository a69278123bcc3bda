package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Atlas looks up countries from your terminal",
		Long:          `Atlas searches the public REST Countries API by name and shows a country's flag, capital, population, currencies, languages and more in a themed view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(flags)
			if err != nil {
				return err
			}
			return runExplorer(app)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newLookupCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
