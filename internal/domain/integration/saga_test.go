package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSagaRunner_AllStepsSucceed(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())

	var order []string
	steps := []SagaStep{
		{Name: "first", Critical: true, Execute: func(ctx context.Context) error {
			order = append(order, "first")
			return nil
		}},
		{Name: "second", Critical: true, Execute: func(ctx context.Context) error {
			order = append(order, "second")
			return nil
		}},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSagaRunner_CriticalFailureCompensatesInReverseOrder(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())
	boom := errors.New("boom")

	var compensated []string
	steps := []SagaStep{
		{
			Name:     "first",
			Critical: true,
			Execute:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensated = append(compensated, "first")
				return nil
			},
		},
		{
			Name:     "second",
			Critical: true,
			Execute:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensated = append(compensated, "second")
				return nil
			},
		},
		{
			Name:     "third",
			Critical: true,
			Execute:  func(ctx context.Context) error { return boom },
		},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"second", "first"}, compensated)
}

func TestSagaRunner_FailedStepIsNotCompensated(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())

	failedStepCompensated := false
	steps := []SagaStep{
		{
			Name:     "only",
			Critical: true,
			Execute:  func(ctx context.Context) error { return errors.New("boom") },
			Compensate: func(ctx context.Context) error {
				failedStepCompensated = true
				return nil
			},
		},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.Error(t, err)
	assert.False(t, failedStepCompensated)
}

func TestSagaRunner_NonCriticalFailureIsAbsorbed(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())

	var order []string
	steps := []SagaStep{
		{Name: "critical", Critical: true, Execute: func(ctx context.Context) error {
			order = append(order, "critical")
			return nil
		}},
		{Name: "best-effort", Critical: false, Execute: func(ctx context.Context) error {
			return errors.New("messaging platform down")
		}},
		{Name: "after", Critical: true, Execute: func(ctx context.Context) error {
			order = append(order, "after")
			return nil
		}},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.NoError(t, err)
	assert.Equal(t, []string{"critical", "after"}, order)
}

func TestSagaRunner_CompensationFailureReturnsDistinctKind(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())
	cause := errors.New("remote create failed")
	compErr := errors.New("local delete failed")

	steps := []SagaStep{
		{
			Name:       "local-row",
			Critical:   true,
			Execute:    func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error { return compErr },
		},
		{
			Name:     "remote-create",
			Critical: true,
			Execute:  func(ctx context.Context) error { return cause },
		},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.Equal(t, KindCompensationFailure, KindOf(err))
	var syncErr *SyncError
	assert.ErrorAs(t, err, &syncErr)
	assert.Equal(t, cause, syncErr.Cause)
	assert.Equal(t, compErr, syncErr.CompensationErr)
}

func TestSagaRunner_AllCompensationsRunDespiteFailure(t *testing.T) {
	runner := NewSagaRunner(zap.NewNop())

	var compensated []string
	steps := []SagaStep{
		{
			Name:     "first",
			Critical: true,
			Execute:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensated = append(compensated, "first")
				return nil
			},
		},
		{
			Name:     "second",
			Critical: true,
			Execute:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensated = append(compensated, "second")
				return errors.New("undo failed")
			},
		},
		{
			Name:     "third",
			Critical: true,
			Execute:  func(ctx context.Context) error { return errors.New("boom") },
		},
	}

	err := runner.Run(context.Background(), "test", steps)

	assert.Equal(t, KindCompensationFailure, KindOf(err))
	assert.Equal(t, []string{"second", "first"}, compensated)
}
