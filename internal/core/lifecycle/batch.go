package lifecycle

import (
	"errors"
	"fmt"

	"kostdesk/internal/core/domain"
)

// Batch is the result of processing a collection record by record.
// Records that failed validation are absent from Items; every failure,
// including recoverable unknown statuses, is listed in Warnings.
type Batch[T any] struct {
	Items    []T
	Warnings []error
}

// WarningCount returns the number of records that could not be fully processed.
func (b Batch[T]) WarningCount() int {
	return len(b.Warnings)
}

// WarningMessage renders the non-fatal notice shown above a partially derived view.
func (b Batch[T]) WarningMessage() string {
	return WarningMessage(len(b.Warnings))
}

// WarningMessage formats a warning count, returning "" when there is nothing to report.
func WarningMessage(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 record could not be processed"
	}
	return fmt.Sprintf("%d records could not be processed", n)
}

// IsRecoverable reports whether err leaves the record usable in an unknown bucket.
func IsRecoverable(err error) bool {
	return errors.Is(err, domain.ErrUnknownStatus)
}

// Apply runs fn over every record, collecting results and per-record errors.
// A recoverable error keeps the returned value; any other error drops the record.
func Apply[In, Out any](records []In, fn func(In) (Out, error)) Batch[Out] {
	out := Batch[Out]{Items: make([]Out, 0, len(records))}
	for _, r := range records {
		v, err := fn(r)
		if err != nil {
			out.Warnings = append(out.Warnings, err)
			if !IsRecoverable(err) {
				continue
			}
		}
		out.Items = append(out.Items, v)
	}
	return out
}
