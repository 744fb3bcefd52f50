package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	var verbose bool
	root := &cobra.Command{
		Use:   "ferienplaner",
		Short: "Plan summer camps for your children",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(loginCmd())
	root.AddCommand(signupCmd())
	root.AddCommand(peopleCmd())
	root.AddCommand(campsCmd())
	root.AddCommand(plansCmd())
	root.AddCommand(planCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
