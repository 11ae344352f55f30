package integration

import (
	"errors"
	"fmt"
)

// Sentinel errors for plain "no match" outcomes. These drive control
// flow (find-before-create) and are not failures by themselves.
var (
	ErrRemoteUserNotFound   = errors.New("integration: remote user not found")
	ErrRemoteCourseNotFound = errors.New("integration: remote course not found")
	ErrGroupNotFound        = errors.New("integration: messaging group not found")
	ErrGroupNotConfigured   = errors.New("integration: messaging platform not configured")

	ErrCourseLinkNotFound     = errors.New("integration: course link not found")
	ErrEnrollmentLinkNotFound = errors.New("integration: enrollment link not found")
)

// ErrorKind is the closed taxonomy callers branch on. Orchestrators and
// the HTTP layer never inspect transport detail or concrete adapter
// errors, only the kind.
type ErrorKind string

const (
	// KindNotFound means a remote resource could not be resolved by any
	// strategy; the message carries the attempted queries.
	KindNotFound ErrorKind = "NOT_FOUND"
	// KindConflict means an existence check detected a duplicate.
	KindConflict ErrorKind = "CONFLICT"
	// KindExternalService covers transport or parsing failures from an
	// adapter, and critical remote warnings.
	KindExternalService ErrorKind = "EXTERNAL_SERVICE"
	// KindCompensationFailure means a compensating local action itself
	// failed. Local and remote state may now disagree; automated
	// recovery is no longer possible and an operator must intervene.
	KindCompensationFailure ErrorKind = "COMPENSATION_FAILURE"
)

// SyncError is the error value produced by the synchronization
// subsystem. It carries the kind, a caller-facing message and the
// wrapped cause chain.
type SyncError struct {
	Kind    ErrorKind
	Message string
	Cause   error
	// CompensationErr is set on KindCompensationFailure: the error from
	// the failed compensating action, kept separate from the original
	// Cause so operators see both.
	CompensationErr error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.CompensationErr != nil {
		msg += " (compensation failed: " + e.CompensationErr.Error() + ")"
	}
	return msg
}

// Unwrap exposes the original cause for errors.Is/errors.As
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a SyncError of kind NotFound
func NewNotFoundError(message string) *SyncError {
	return &SyncError{Kind: KindNotFound, Message: message}
}

// NewConflictError creates a SyncError of kind Conflict
func NewConflictError(message string) *SyncError {
	return &SyncError{Kind: KindConflict, Message: message}
}

// NewExternalError creates a SyncError of kind ExternalService wrapping cause
func NewExternalError(message string, cause error) *SyncError {
	return &SyncError{Kind: KindExternalService, Message: message, Cause: cause}
}

// NewCompensationFailure creates a SyncError of kind CompensationFailure.
// cause is the failure that triggered compensation, compErr is the
// failure of the compensating action itself.
func NewCompensationFailure(message string, cause, compErr error) *SyncError {
	return &SyncError{Kind: KindCompensationFailure, Message: message, Cause: cause, CompensationErr: compErr}
}

// KindOf returns the ErrorKind of err, or "" when err is not a SyncError
func KindOf(err error) ErrorKind {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	return ""
}
