// Package application defines what ibanapi commands need from the running
// application. Commands accept the interface rather than the concrete
// cmd/ibanapi/app.App so they can be tested against Mock.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            acct, err := app.Validator().Validate(args[0])
//	            // ...
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// Application provides the application interface that commands need.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Validator returns the IBAN validator bound to the configured registry.
	Validator() *iban.Validator

	// Registry returns the country format registry in use.
	Registry() *countries.Registry

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
