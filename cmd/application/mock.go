package application

import (
	"github.com/rs/zerolog"

	"github.com/manosbatsis/ibanapi/pkg/countries"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// Mock implements Application for tests. Each method can be customized by
// setting the corresponding function field; a nil field yields a default.
//
//	mock := &application.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := validate.NewCommand(mock)
type Mock struct {
	ValidatorFunc    func() *iban.Validator
	RegistryFunc     func() *countries.Registry
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

var _ Application = (*Mock)(nil)

// Validator returns the mock validator or one bound to the embedded registry.
func (m *Mock) Validator() *iban.Validator {
	if m.ValidatorFunc != nil {
		return m.ValidatorFunc()
	}
	return iban.New(m.Registry())
}

// Registry returns the mock registry or the embedded one.
func (m *Mock) Registry() *countries.Registry {
	if m.RegistryFunc != nil {
		return m.RegistryFunc()
	}
	return countries.Default()
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns build date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
