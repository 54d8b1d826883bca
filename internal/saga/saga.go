// Package saga runs multi-step writes that have no shared transaction and
// undoes the completed steps when a later one fails.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"cashdesk/internal/domain"
)

// Compensation undoes one completed step.
type Compensation struct {
	Name string
	Undo func(ctx context.Context) error
}

// StepFailure records a compensation that did not succeed.
type StepFailure struct {
	Step string
	Err  error
}

// RollbackError is returned when one or more compensations failed after the
// saga was aborted. Records left behind are listed in Failures.
type RollbackError struct {
	RunID    string
	Cause    error
	Failures []StepFailure
}

func (e *RollbackError) Error() string {
	steps := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		steps = append(steps, fmt.Sprintf("%s: %v", f.Step, f.Err))
	}
	return fmt.Sprintf("saga %s: rollback incomplete after %v (%s)", e.RunID, e.Cause, strings.Join(steps, "; "))
}

func (e *RollbackError) Unwrap() []error {
	errs := []error{domain.ErrPartialRollback}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Saga keeps the compensation stack of one run. It is not safe for
// concurrent use.
type Saga struct {
	id     string
	name   string
	logger *slog.Logger
	stack  []Compensation
}

func New(name string, logger *slog.Logger) *Saga {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Saga{
		id:     id,
		name:   name,
		logger: logger.With("saga", name, "run_id", id),
	}
}

func (s *Saga) ID() string { return s.id }

// Push registers undo for a step that already succeeded.
func (s *Saga) Push(name string, undo func(ctx context.Context) error) {
	s.stack = append(s.stack, Compensation{Name: name, Undo: undo})
}

// Run executes do and, when it succeeds, pushes undo. A nil undo marks a
// step that needs no compensation.
func (s *Saga) Run(ctx context.Context, name string, do func(ctx context.Context) error, undo func(ctx context.Context) error) error {
	if err := do(ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if undo != nil {
		s.Push(name, undo)
	}
	return nil
}

// Compensate unwinds the stack in reverse order. Every compensation is
// attempted even when an earlier one fails. It returns cause when the
// rollback was complete and a *RollbackError otherwise.
func (s *Saga) Compensate(ctx context.Context, cause error) error {
	var failures []StepFailure
	for i := len(s.stack) - 1; i >= 0; i-- {
		c := s.stack[i]
		if err := c.Undo(ctx); err != nil {
			s.logger.Error("compensation failed", "step", c.Name, "error", err)
			failures = append(failures, StepFailure{Step: c.Name, Err: err})
			continue
		}
		s.logger.Debug("compensated", "step", c.Name)
	}
	s.stack = nil

	if len(failures) == 0 {
		return cause
	}
	return &RollbackError{RunID: s.id, Cause: cause, Failures: failures}
}

func (s *Saga) pending() int { return len(s.stack) }

// AsRollbackError returns the failed rollback carried by err, if any.
func AsRollbackError(err error) (*RollbackError, bool) {
	var re *RollbackError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
