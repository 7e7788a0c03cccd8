// Package countries provides the countries command for the ibanapi CLI.
package countries

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/cmd/output"
	pkgcountries "github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// NewCommand creates the countries command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "countries [CODE]",
		Aliases: []string{"country"},
		Short:   "List supported country formats",
		Long: `List the IBAN formats in the country registry, or show one format
with its BBAN fields when a two-letter country code is given.`,
		Example: `  # All countries
  ibanapi countries

  # Include BBAN length and identifier ranges
  ibanapi countries -o wide

  # One country with its fields
  ibanapi countries GB`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(app.OutputFormat())
			formatter := output.NewFormatter(format)
			reg := app.Registry()
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				formats := reg.All()
				if format.IsTable() || format == "" {
					return formatter.Format(w, output.CountriesToTableData(formats, format == output.FormatWide))
				}
				infos := make([]pkgcountries.Info, len(formats))
				for i, f := range formats {
					infos[i] = f.Info()
				}
				return formatter.Format(w, infos)
			}

			code := strings.ToUpper(strings.TrimSpace(args[0]))
			f, ok := reg.Lookup(code)
			if !ok {
				return errors.NewNotFoundError("country", code)
			}
			if format.IsTable() || format == "" {
				return formatter.Format(w, output.CountryToTableData(f))
			}
			return formatter.Format(w, f.Info())
		},
	}
}
