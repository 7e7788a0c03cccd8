// Package countries is the IBAN country format registry: for every
// supported country, the total IBAN length and the ordered list of BBAN
// fields with their widths, character classes and roles.
//
// The registry is data. The formats shipped with the binary live in an
// embedded YAML file and are parsed once at package initialization;
// adding a country is an edit to that file and never a code change. A
// Registry is never mutated after Load returns, so it is shared by
// reference across goroutines without locking.
package countries

import (
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/manosbatsis/ibanapi/internal/embedded"
	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// Registry maps country codes to their formats.
type Registry struct {
	formats map[string]Format
	codes   []string
}

type document struct {
	Countries []entry `yaml:"countries"`
}

type entry struct {
	Code   string     `yaml:"code"`
	Name   string     `yaml:"name"`
	Length int        `yaml:"length"`
	Fields []rawField `yaml:"fields"`
}

type rawField struct {
	Length  int    `yaml:"length"`
	Charset string `yaml:"charset"`
	Role    string `yaml:"role"`
}

var defaultRegistry = mustLoad(embedded.Countries, embedded.CountriesFile)

// Default returns the registry built from the embedded country data.
func Default() *Registry {
	return defaultRegistry
}

func mustLoad(data []byte, file string) *Registry {
	r, err := load(data, file)
	if err != nil {
		panic(err)
	}
	return r
}

// Load parses a registry document. Every entry is checked and all problems
// are reported together in a single *errors.ParseError.
func Load(data []byte) (*Registry, error) {
	return load(data, "")
}

// LoadFile reads and parses a registry document from disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	return load(data, path)
}

func load(data []byte, file string) (*Registry, error) {
	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.NewParseError("yaml", file, err.Error(), err)
	}
	if len(doc.Countries) == 0 {
		return nil, errors.NewParseError("yaml", file, "no countries defined", nil)
	}

	var problems errors.Problems
	r := &Registry{formats: make(map[string]Format, len(doc.Countries))}
	for i, e := range doc.Countries {
		f, ok := e.build(i, &problems)
		if !ok {
			continue
		}
		if _, dup := r.formats[f.code]; dup {
			problems.Addf("%s: duplicate entry", f.code)
			continue
		}
		r.formats[f.code] = f
		r.codes = append(r.codes, f.code)
	}
	if !problems.Empty() {
		return nil, errors.NewParseError("yaml", file, problems.String(), nil)
	}
	sort.Strings(r.codes)
	return r, nil
}

// build converts one entry, recording every violation it finds.
func (e entry) build(index int, problems *errors.Problems) (Format, bool) {
	label := e.Code
	before := len(*problems)
	if !isCountryCode(e.Code) {
		label = "#" + strconv.Itoa(index)
		problems.Addf("%s: country code %q must be two upper-case letters", label, e.Code)
	}
	if e.Length < constants.MinIBANLength || e.Length > constants.MaxIBANLength {
		problems.Addf("%s: length %d outside %d..%d", label, e.Length, constants.MinIBANLength, constants.MaxIBANLength)
	}
	if len(e.Fields) == 0 {
		problems.Addf("%s: no BBAN fields", label)
	}

	fields := make([]Field, 0, len(e.Fields))
	sum, banks, branches := 0, 0, 0
	for j, rf := range e.Fields {
		if rf.Length <= 0 {
			problems.Addf("%s: field %d has non-positive length %d", label, j, rf.Length)
		}
		cs, err := ParseCharset(rf.Charset)
		if err != nil {
			problems.Addf("%s: field %d: %v", label, j, err)
		}
		role, err := ParseRole(rf.Role)
		if err != nil {
			problems.Addf("%s: field %d: %v", label, j, err)
		}
		switch role {
		case RoleBank:
			banks++
		case RoleBranch:
			branches++
		}
		sum += rf.Length
		fields = append(fields, Field{Length: rf.Length, Charset: cs, Role: role})
	}
	if banks > 1 {
		problems.Addf("%s: %d bank identifier fields, at most one allowed", label, banks)
	}
	if branches > 1 {
		problems.Addf("%s: %d branch identifier fields, at most one allowed", label, branches)
	}
	if len(e.Fields) > 0 && sum != e.Length-constants.HeaderLength {
		problems.Addf("%s: fields cover %d characters, BBAN length is %d", label, sum, e.Length-constants.HeaderLength)
	}

	if len(*problems) > before {
		return Format{}, false
	}
	return newFormat(e.Code, e.Name, e.Length, fields), true
}

// Lookup returns the format registered for code. Codes are matched exactly;
// callers normalize case first.
func (r *Registry) Lookup(code string) (Format, bool) {
	f, ok := r.formats[code]
	return f, ok
}

// Codes returns the registered country codes in ascending order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.codes)
}

// All returns every format ordered by country code.
func (r *Registry) All() []Format {
	out := make([]Format, 0, len(r.codes))
	for _, c := range r.codes {
		out = append(out, r.formats[c])
	}
	return out
}

func isCountryCode(s string) bool {
	return len(s) == constants.CountryCodeLength &&
		s[0] >= 'A' && s[0] <= 'Z' &&
		s[1] >= 'A' && s[1] <= 'Z'
}
