package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/pkg/metrics"
	"kostdesk/internal/pkg/pagination"
)

// Clock supplies the current time to services. The rules core never reads it.
type Clock func() time.Time

// SystemClock is the wall clock
func SystemClock() time.Time { return time.Now() }

// Lookup errors
var (
	ErrPropertyNotFound = fmt.Errorf("property %w", domain.ErrNotFound)
	ErrRoomNotFound     = fmt.Errorf("room %w", domain.ErrNotFound)
	ErrContractNotFound = fmt.Errorf("contract %w", domain.ErrNotFound)
	ErrInvoiceNotFound  = fmt.Errorf("invoice %w", domain.ErrNotFound)
	ErrTicketNotFound   = fmt.Errorf("maintenance ticket %w", domain.ErrNotFound)
	ErrTodoNotFound     = fmt.Errorf("todo %w", domain.ErrNotFound)
	ErrEntryNotFound    = fmt.Errorf("waiting list entry %w", domain.ErrNotFound)
)

// notFound translates gorm's missing-row error into sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// ListQuery is the common shape of every list request
type ListQuery struct {
	Query   string
	Filters map[string]string
	Page    int
	Limit   int
	// Today overrides the clock for previewing derivations
	Today *time.Time
}

// ListResult is one page of derived records plus the batch warnings
type ListResult[T any] struct {
	Items          []T              `json:"items"`
	Meta           *pagination.Meta `json:"meta"`
	Warnings       int              `json:"warnings"`
	WarningMessage string           `json:"warning_message,omitempty"`
}

// now resolves the evaluation time of a request
func now(today *time.Time, clock Clock) time.Time {
	if today != nil {
		return *today
	}
	return clock()
}

func page[T any](q ListQuery, items []T, toRecord func(T) lifecycle.Record, warnings int) *ListResult[T] {
	filtered := lifecycle.Filter(items, toRecord, q.Query, q.Filters)
	rows, meta := pagination.Slice(filtered, pagination.NewParams(q.Page, q.Limit))
	return &ListResult[T]{
		Items:          rows,
		Meta:           meta,
		Warnings:       warnings,
		WarningMessage: lifecycle.WarningMessage(warnings),
	}
}

// reportWarnings logs and counts the per-record failures of a batch
func reportWarnings(logger *slog.Logger, warnings []error) {
	for _, err := range warnings {
		var (
			verr *domain.ValidationError
			uerr *domain.UnknownStatusError
		)
		switch {
		case errors.As(err, &verr):
			metrics.ObserveRecordWarning(verr.Entity, "validation")
			logger.Warn("record skipped",
				slog.String("entity", verr.Entity),
				slog.Uint64("record_id", uint64(verr.RecordID)),
				slog.String("field", verr.Field),
				slog.String("error", verr.Message),
			)
		case errors.As(err, &uerr):
			metrics.ObserveRecordWarning(uerr.Entity, "unknown_status")
			logger.Warn("unknown status",
				slog.String("entity", uerr.Entity),
				slog.Uint64("record_id", uint64(uerr.RecordID)),
				slog.String("value", uerr.Value),
			)
		default:
			logger.Warn("record could not be processed", slog.String("error", err.Error()))
		}
	}
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func orClock(clock Clock) Clock {
	if clock == nil {
		return SystemClock
	}
	return clock
}
