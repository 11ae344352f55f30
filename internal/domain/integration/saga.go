package integration

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SagaStep is one step of a multi-system operation. Critical steps stop
// the saga on failure and trigger compensation of the already-completed
// steps in reverse order; non-critical steps are best-effort and their
// failures are logged and absorbed.
type SagaStep struct {
	Name     string
	Critical bool
	Execute  func(ctx context.Context) error
	// Compensate semantically undoes Execute. Nil when the step has
	// nothing to undo.
	Compensate func(ctx context.Context) error
}

// SagaRunner executes saga steps in order, synchronously and
// single-attempt. There is no retry scheduler and no durable log of
// in-flight sagas; a failed step fails the saga once.
type SagaRunner struct {
	logger *zap.Logger
}

// NewSagaRunner creates a new saga runner
func NewSagaRunner(logger *zap.Logger) *SagaRunner {
	return &SagaRunner{logger: logger.Named("saga")}
}

// Run executes the steps in order. On a critical failure it compensates
// the completed steps in reverse order and returns the original error,
// or a CompensationFailure SyncError when a compensating action itself
// fails.
func (r *SagaRunner) Run(ctx context.Context, name string, steps []SagaStep) error {
	completed := make([]SagaStep, 0, len(steps))

	for _, step := range steps {
		err := step.Execute(ctx)
		if err == nil {
			completed = append(completed, step)
			continue
		}

		if !step.Critical {
			r.logger.Warn("best-effort saga step failed",
				zap.String("saga", name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			continue
		}

		r.logger.Error("saga step failed, compensating",
			zap.String("saga", name),
			zap.String("step", step.Name),
			zap.Error(err),
		)

		if compErr := r.compensate(ctx, name, completed); compErr != nil {
			return NewCompensationFailure(
				fmt.Sprintf("saga %s failed at step %s and could not be compensated", name, step.Name),
				err, compErr,
			)
		}
		return fmt.Errorf("saga %s failed at step %s: %w", name, step.Name, err)
	}

	return nil
}

// compensate runs the Compensate hooks of completed steps in reverse
// order. It keeps going past individual failures so every hook gets a
// chance to run, and returns the first failure.
func (r *SagaRunner) compensate(ctx context.Context, name string, completed []SagaStep) error {
	var firstErr error
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			r.logger.Error("saga compensation failed",
				zap.String("saga", name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.logger.Info("saga step compensated",
			zap.String("saga", name),
			zap.String("step", step.Name),
		)
	}
	return firstErr
}
