package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manosbatsis/ibanapi/cmd/ibanapi/cmd/countries"
	"github.com/manosbatsis/ibanapi/cmd/ibanapi/cmd/serve"
	"github.com/manosbatsis/ibanapi/cmd/ibanapi/cmd/validate"
	"github.com/manosbatsis/ibanapi/pkg/constants"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateValidateCommand())
	rootCmd.AddCommand(a.CreateCountriesCommand())
	rootCmd.AddCommand(a.CreateServeCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	cmd := validate.NewCommand(a)
	cmd.GroupID = "core"
	return cmd
}

// CreateCountriesCommand creates the countries command with app dependencies.
func (a *App) CreateCountriesCommand() *cobra.Command {
	cmd := countries.NewCommand(a)
	cmd.GroupID = "core"
	return cmd
}

// CreateServeCommand creates the serve command. Settings come from the
// configuration loaded when the command runs; flags override them.
func (a *App) CreateServeCommand() *cobra.Command {
	cmd := serve.NewCommand(a, a.ServerConfig)
	cmd.GroupID = "core"
	return cmd
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", constants.AppName, a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
