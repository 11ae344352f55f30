package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/academia/backend/internal/domain/academic"
	"github.com/academia/backend/internal/domain/integration"
)

// EnrollmentOrchestrator runs the matriculation saga and the
// administrative state transitions of enrollment links. It is invoked
// synchronously after the Matriculated flag has been committed; on any
// critical failure the flag is reverted and the caller gets an error
// describing both the failure and the reversal.
type EnrollmentOrchestrator struct {
	enrollments     academic.EnrollmentRepository
	courseLinks     integration.CourseLinkRepository
	enrollmentLinks integration.EnrollmentLinkRepository
	users           integration.UserGateway
	lmsCourses      integration.CourseGateway
	enrolments      integration.EnrolmentGateway
	runner          *integration.SagaRunner
	logger          *zap.Logger
}

// NewEnrollmentOrchestrator creates a new EnrollmentOrchestrator
func NewEnrollmentOrchestrator(
	enrollments academic.EnrollmentRepository,
	courseLinks integration.CourseLinkRepository,
	enrollmentLinks integration.EnrollmentLinkRepository,
	users integration.UserGateway,
	lmsCourses integration.CourseGateway,
	enrolments integration.EnrolmentGateway,
	logger *zap.Logger,
) *EnrollmentOrchestrator {
	return &EnrollmentOrchestrator{
		enrollments:     enrollments,
		courseLinks:     courseLinks,
		enrollmentLinks: enrollmentLinks,
		users:           users,
		lmsCourses:      lmsCourses,
		enrolments:      enrolments,
		runner:          integration.NewSagaRunner(logger),
		logger:          logger.Named("enrollment-sync"),
	}
}

// Matriculate runs after the Matriculated flag was set and committed.
// It resolves the remote user (creating one if the email is unknown),
// resolves the remote course through the three lookup tiers, enrols the
// user unless already enrolled, and records an EnrollmentLink. Every
// step is idempotent so a re-run after a partial failure converges
// instead of duplicating remote state.
func (o *EnrollmentOrchestrator) Matriculate(ctx context.Context, req *MatriculationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !req.Enrollment.Matriculated {
		return ErrNotMatriculated
	}

	var remoteUserID, remoteCourseID int64

	steps := []integration.SagaStep{
		{
			// Represents the already-committed flag flip; exists only to
			// carry the compensating revert.
			Name:     "matriculation-flag",
			Critical: true,
			Execute: func(ctx context.Context) error {
				return nil
			},
			Compensate: func(ctx context.Context) error {
				req.Enrollment.RevertMatriculation()
				return o.enrollments.Save(ctx, req.Enrollment)
			},
		},
		{
			Name:     "resolve-remote-user",
			Critical: true,
			Execute: func(ctx context.Context) error {
				id, err := o.resolveRemoteUser(ctx, req.Person)
				if err != nil {
					return err
				}
				remoteUserID = id
				return nil
			},
		},
		{
			Name:     "resolve-remote-course",
			Critical: true,
			Execute: func(ctx context.Context) error {
				id, err := o.resolveRemoteCourse(ctx, req.Course)
				if err != nil {
					return err
				}
				remoteCourseID = id
				return nil
			},
		},
		{
			Name:     "enrol-remote-user",
			Critical: true,
			Execute: func(ctx context.Context) error {
				return o.enrolRemoteUser(ctx, remoteUserID, remoteCourseID, req.Course)
			},
		},
		{
			Name:     "persist-enrollment-link",
			Critical: true,
			Execute: func(ctx context.Context) error {
				return o.persistLink(ctx, req.Enrollment.ID, remoteUserID, req.Person.Email)
			},
		},
	}

	if err := o.runner.Run(ctx, "enrollment-matriculation", steps); err != nil {
		if integration.KindOf(err) == integration.KindCompensationFailure {
			return fmt.Errorf("Error al matricular a %s en %s: %w",
				req.Person.Email, req.Course.ShortName, err)
		}
		return fmt.Errorf("Error al matricular a %s en %s (la matrícula fue revertida): %w",
			req.Person.Email, req.Course.ShortName, err)
	}

	o.logger.Info("enrollment synchronized with LMS",
		zap.String("enrollment_id", req.Enrollment.ID.String()),
		zap.Int64("remote_user_id", remoteUserID),
		zap.Int64("remote_course_id", remoteCourseID),
	)
	return nil
}

// PreDelete runs before a local enrollment delete. Remote unenrolment on
// deletion is not performed today; only the local link record is removed.
func (o *EnrollmentOrchestrator) PreDelete(ctx context.Context, enrollmentID uuid.UUID) error {
	err := o.enrollmentLinks.DeleteByEnrollmentID(ctx, enrollmentID)
	if err != nil && !errors.Is(err, integration.ErrEnrollmentLinkNotFound) {
		o.logger.Warn("could not delete enrollment link",
			zap.String("enrollment_id", enrollmentID.String()), zap.Error(err))
	}
	return nil
}

// ChangeState applies an administrative state transition to the link.
// A transition to DESMATRICULADO additionally attempts a best-effort
// remote unenrolment; its failure is logged and never surfaced.
func (o *EnrollmentOrchestrator) ChangeState(ctx context.Context, enrollmentID uuid.UUID, state integration.EnrollmentState, notes string) (*integration.EnrollmentLink, error) {
	link, err := o.enrollmentLinks.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if err := link.ChangeState(state, notes); err != nil {
		return nil, err
	}
	if err := o.enrollmentLinks.Save(ctx, link); err != nil {
		return nil, err
	}

	if state == integration.EnrollmentStateDesmatriculado {
		o.unenrolRemote(ctx, enrollmentID, link.RemoteUserID)
	}

	o.logger.Info("enrollment link state changed",
		zap.String("enrollment_id", enrollmentID.String()),
		zap.String("state", state.String()),
	)
	return link, nil
}

// resolveRemoteUser finds the remote user by email, creating one from
// the person's profile when the email is unknown to the LMS.
func (o *EnrollmentOrchestrator) resolveRemoteUser(ctx context.Context, person *academic.Person) (int64, error) {
	id, err := o.users.FindUserByEmail(ctx, person.Email)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, integration.ErrRemoteUserNotFound) {
		return 0, err
	}

	id, err = o.users.CreateUser(ctx, integration.UserProfile{
		FirstName:   person.FirstName,
		LastName:    person.LastName,
		Email:       person.Email,
		Country:     person.Country,
		City:        person.City,
		Phone:       person.Phone,
		Institution: person.Institution,
		Profession:  person.Profession,
	})
	if err != nil {
		return 0, err
	}

	o.logger.Info("remote user created",
		zap.String("email", person.Email),
		zap.Int64("remote_user_id", id),
	)
	return id, nil
}

// resolveRemoteCourse resolves the remote course id through three tiers:
// exact normalized short name, then short name prefix pattern, then full
// display name. The first tier that matches wins.
func (o *EnrollmentOrchestrator) resolveRemoteCourse(ctx context.Context, course *academic.Course) (int64, error) {
	shortName := integration.NormalizeShortName(course.ShortName)

	id, err := o.lmsCourses.FindCourseIDByShortName(ctx, shortName)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, integration.ErrRemoteCourseNotFound) {
		return 0, err
	}

	id, err = o.lmsCourses.FindCourseIDByPattern(ctx, shortName)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, integration.ErrRemoteCourseNotFound) {
		return 0, err
	}

	id, err = o.lmsCourses.FindCourseIDByFullName(ctx, course.Name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, integration.ErrRemoteCourseNotFound) {
		return 0, err
	}

	return 0, integration.NewNotFoundError(fmt.Sprintf(
		"course not found on LMS (shortname=%q, pattern=%q, fullname=%q)",
		shortName, shortName, course.Name))
}

// enrolRemoteUser enrols the user unless the LMS already has the
// enrolment, in which case the step is a no-op.
func (o *EnrollmentOrchestrator) enrolRemoteUser(ctx context.Context, userID, courseID int64, course *academic.Course) error {
	enrolled, err := o.enrolments.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		o.logger.Info("user already enrolled on LMS, skipping enrolment",
			zap.Int64("remote_user_id", userID),
			zap.Int64("remote_course_id", courseID),
		)
		return nil
	}

	return o.enrolments.Enrol(ctx, integration.EnrolRequest{
		UserID:   userID,
		CourseID: courseID,
		EndDate:  course.EndDate,
	})
}

// persistLink records the enrollment link unless one already exists
func (o *EnrollmentOrchestrator) persistLink(ctx context.Context, enrollmentID uuid.UUID, remoteUserID int64, email string) error {
	exists, err := o.enrollmentLinks.ExistsByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	link, err := integration.NewEnrollmentLink(enrollmentID, remoteUserID, integration.UsernameFromEmail(email))
	if err != nil {
		return err
	}
	return o.enrollmentLinks.Save(ctx, link)
}

// unenrolRemote removes the remote enrolment, best-effort. Needs the
// course link to know which remote course to unenrol from.
func (o *EnrollmentOrchestrator) unenrolRemote(ctx context.Context, enrollmentID uuid.UUID, remoteUserID int64) {
	enrollment, err := o.enrollments.FindByID(ctx, enrollmentID)
	if err != nil {
		o.logger.Warn("could not load enrollment for remote unenrolment",
			zap.String("enrollment_id", enrollmentID.String()), zap.Error(err))
		return
	}

	courseLink, err := o.courseLinks.FindByCourseID(ctx, enrollment.CourseID)
	if err != nil {
		o.logger.Warn("no course link, skipping remote unenrolment",
			zap.String("enrollment_id", enrollmentID.String()), zap.Error(err))
		return
	}

	if err := o.enrolments.Unenrol(ctx, remoteUserID, courseLink.RemoteCourseID); err != nil {
		o.logger.Warn("could not unenrol user on LMS",
			zap.Int64("remote_user_id", remoteUserID),
			zap.Int64("remote_course_id", courseLink.RemoteCourseID),
			zap.Error(err))
	}
}

