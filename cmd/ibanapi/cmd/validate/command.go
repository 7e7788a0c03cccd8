// Package validate provides the validate command for the ibanapi CLI.
package validate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manosbatsis/ibanapi/cmd/application"
	"github.com/manosbatsis/ibanapi/internal/batch"
	"github.com/manosbatsis/ibanapi/internal/cmd/output"
	pkgerrors "github.com/manosbatsis/ibanapi/pkg/errors"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// ErrInvalidIBANs is returned when at least one input failed validation,
// so the process exits with a non-zero status.
var ErrInvalidIBANs = errors.New("invalid IBANs")

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		file        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "validate [IBAN...]",
		Short: "Validate IBANs and show their parts",
		Long: `Validate one or more IBANs. Spaces and lower-case letters are accepted;
each input is normalized before validation.

Valid IBANs are shown with their country, bank and branch identifiers.
The command exits with a non-zero status when any input is invalid.`,
		Example: `  # Validate a single IBAN
  ibanapi validate DE44500105175407324931

  # Printed form with spaces works when quoted
  ibanapi validate "GB82 WEST 1234 5698 7654 32"

  # Validate a file, one IBAN per line
  ibanapi validate --file accounts.txt --format json

  # Read from stdin
  cat accounts.txt | ibanapi validate --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := collectInputs(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			return run(cmd, app, inputs, concurrency)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read IBANs from a file, one per line (- for stdin)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel validations (default 8)")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, inputs []string, concurrency int) error {
	logger := app.Logger()

	results, err := batch.Run(cmd.Context(), app.Validator(), inputs, batch.Options{
		Concurrency: concurrency,
		Observe: func(res batch.Result) {
			logger.Debug().
				Str("iban", iban.Mask(res.Input)).
				Bool("valid", res.Valid()).
				Msg("Validated")
		},
	})
	if err != nil {
		return err
	}

	if err := render(cmd.OutOrStdout(), output.Format(app.OutputFormat()), results); err != nil {
		return err
	}

	valid, invalid := batch.Count(results)
	logger.Debug().Int("valid", valid).Int("invalid", invalid).Msg("Validation finished")
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIBANs, invalid, len(results))
	}
	return nil
}

func render(w io.Writer, format output.Format, results []batch.Result) error {
	formatter := output.NewFormatter(format)
	if format.IsTable() || format == "" {
		return formatter.Format(w, output.ResultsToTableData(results, format == output.FormatWide))
	}

	outcomes := make([]batch.Outcome, len(results))
	for i, res := range results {
		outcomes[i] = res.Outcome()
	}
	return formatter.Format(w, outcomes)
}

// collectInputs merges positional arguments with the lines of file.
func collectInputs(stdin io.Reader, args []string, file string) ([]string, error) {
	inputs := append([]string(nil), args...)

	if file != "" {
		lines, err := readFile(stdin, file)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lines...)
	}

	if len(inputs) == 0 {
		return nil, pkgerrors.NewValidationError("iban", nil, "no IBANs given: pass them as arguments or with --file")
	}
	return inputs, nil
}

func readFile(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		lines, err := batch.ReadLines(stdin)
		if err != nil {
			return nil, pkgerrors.NewIOError("read", "stdin", err)
		}
		return lines, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.NewIOError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := batch.ReadLines(f)
	if err != nil {
		return nil, pkgerrors.NewIOError("read", path, err)
	}
	return lines, nil
}
