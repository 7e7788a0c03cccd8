// Package batch validates many IBANs concurrently for the CLI file mode and
// the HTTP batch endpoint.
package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/manosbatsis/ibanapi/pkg/constants"
	"github.com/manosbatsis/ibanapi/pkg/iban"
)

// Result is the outcome for one input. Results keep the order of the inputs.
type Result struct {
	Index int
	Input string
	IBAN  iban.IBAN
	Err   error
}

// Valid reports whether the input passed validation.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Outcome is the serializable form of a Result.
type Outcome struct {
	Input   string     `json:"input" yaml:"input"`
	Valid   bool       `json:"valid" yaml:"valid"`
	Info    *iban.Info `json:"info,omitempty" yaml:"info,omitempty"`
	Kind    string     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
}

// Outcome converts r into its serializable form.
func (r Result) Outcome() Outcome {
	if r.Valid() {
		info := r.IBAN.Info()
		return Outcome{Input: r.Input, Valid: true, Info: &info}
	}
	out := Outcome{Input: r.Input, Message: r.Err.Error()}
	var verr *iban.ValidationError
	if errors.As(r.Err, &verr) {
		out.Kind = verr.Kind.String()
	}
	return out
}

// Options tune a Run.
type Options struct {
	// Concurrency caps the number of validations in flight.
	// Zero or less selects constants.DefaultConcurrency.
	Concurrency int

	// Observe, when set, is called once per result from the worker that
	// produced it. It must be safe for concurrent use.
	Observe func(Result)
}

// Run validates inputs with bounded parallelism. Invalid IBANs are
// reported in their Result, not as an error; Run only fails when ctx is
// done before every input was processed.
func Run(ctx context.Context, v *iban.Validator, inputs []string, opts Options) ([]Result, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = constants.DefaultConcurrency
	}

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			acct, err := v.Validate(in)
			res := Result{Index: i, Input: in, IBAN: acct, Err: err}
			results[i] = res
			if opts.Observe != nil {
				opts.Observe(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is always done after Wait; the caller's tells
	// whether the loop stopped early.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns how many results are valid and invalid.
func Count(results []Result) (valid, invalid int) {
	for _, r := range results {
		if r.Valid() {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}
