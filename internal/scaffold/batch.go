package scaffold

import (
	"context"

	"github.com/sourcegraph/conc/iter"

	"github.com/crcf-labs/crcf/internal/component"
	cerrors "github.com/crcf-labs/crcf/internal/errors"
)

// Outcome is the result of one component of a batch. Exactly one of Result
// and Err is set.
type Outcome struct {
	// Arg is the raw name argument the outcome belongs to.
	Arg    string
	Result *Result
	Err    error
}

// Batch materializes one component per raw name argument. Components run
// concurrently and independently: a failure is recorded in its own Outcome
// and never stops the others. Outcomes are returned in argument order.
//
// Arguments naming the same directory ("Button", "./Button") are resolved
// before anything runs: the first one is materialized and the later ones
// fail with ErrDirectoryExists.
func (m *Materializer) Batch(ctx context.Context, args []string, cfg component.Config) []Outcome {
	type job struct {
		arg  string
		spec component.Spec
		err  error
	}

	jobs := make([]job, len(args))
	seen := make(map[string]struct{}, len(args))
	for i, arg := range args {
		spec, err := component.NewSpec(arg, cfg)
		if err == nil {
			if _, dup := seen[spec.Dir]; dup {
				err = cerrors.NewDirectoryExistsError(spec.Dir)
			}
			seen[spec.Dir] = struct{}{}
		}
		jobs[i] = job{arg: arg, spec: spec, err: err}
	}

	return iter.Map(jobs, func(j *job) Outcome {
		out := Outcome{Arg: j.arg}
		if j.err != nil {
			out.Err = j.err
			return out
		}
		out.Result, out.Err = m.Materialize(ctx, j.spec)
		return out
	})
}

// Failed returns the outcomes that carry an error.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
