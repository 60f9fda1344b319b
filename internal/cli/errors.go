package cli

import (
	"errors"
	"fmt"
)

// reportedError marks an error whose details were already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// batchError summarizes a batch with failures. It unwraps to the first
// failure so the exit code follows it.
func batchError(failed, total int, first error) error {
	return &reportedError{err: fmt.Errorf("%d of %d components failed: %w", failed, total, first)}
}
