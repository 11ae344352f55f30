package sync

import (
	"errors"

	"github.com/academia/backend/internal/domain/academic"
)

// MatriculationRequest carries the enrollment together with the person
// and course data the saga needs, so the orchestrator performs no
// further local lookups between remote calls.
type MatriculationRequest struct {
	Enrollment *academic.Enrollment
	Person     *academic.Person
	Course     *academic.Course
}

var (
	// ErrIncompleteMatriculationRequest indicates the request is missing a relation
	ErrIncompleteMatriculationRequest = errors.New("sync: matriculation request is missing enrollment, person or course")

	// ErrNotMatriculated indicates the caller invoked the saga before
	// committing the matriculated flag
	ErrNotMatriculated = errors.New("sync: enrollment is not marked as matriculated")
)

// Validate validates the request
func (r *MatriculationRequest) Validate() error {
	if r.Enrollment == nil || r.Person == nil || r.Course == nil {
		return ErrIncompleteMatriculationRequest
	}
	return nil
}
