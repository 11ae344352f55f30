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

// CourseOrchestrator keeps local courses consistent with the LMS and
// the messaging platform. It owns the CourseLink and MessagingGroup
// records; the local course row belongs to the academic service and is
// only ever deleted here as a compensating action.
type CourseOrchestrator struct {
	courses     academic.CourseRepository
	courseLinks integration.CourseLinkRepository
	groups      integration.MessagingGroupRepository
	lmsCourses  integration.CourseGateway
	messaging   integration.GroupGateway
	runner      *integration.SagaRunner
	logger      *zap.Logger
}

// NewCourseOrchestrator creates a new CourseOrchestrator
func NewCourseOrchestrator(
	courses academic.CourseRepository,
	courseLinks integration.CourseLinkRepository,
	groups integration.MessagingGroupRepository,
	lmsCourses integration.CourseGateway,
	messaging integration.GroupGateway,
	logger *zap.Logger,
) *CourseOrchestrator {
	return &CourseOrchestrator{
		courses:     courses,
		courseLinks: courseLinks,
		groups:      groups,
		lmsCourses:  lmsCourses,
		messaging:   messaging,
		runner:      integration.NewSagaRunner(logger),
		logger:      logger.Named("course-sync"),
	}
}

// PostCreate runs after the local course row is committed. It creates
// the remote LMS course and the CourseLink record; if either fails the
// just-created local row is deleted and the whole business operation
// fails. The messaging group is created afterwards, best-effort.
func (o *CourseOrchestrator) PostCreate(ctx context.Context, course *academic.Course) error {
	shortName := integration.NormalizeShortName(course.ShortName)
	var remoteCourseID int64

	steps := []integration.SagaStep{
		{
			Name:     "local-course-row",
			Critical: true,
			// Represents the already-committed local row; exists only to
			// carry the compensating delete so any later failure removes it
			Execute: func(ctx context.Context) error {
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return o.courses.Delete(ctx, course.ID)
			},
		},
		{
			Name:     "verify-not-linked",
			Critical: true,
			Execute: func(ctx context.Context) error {
				exists, err := o.courseLinks.ExistsByCourseID(ctx, course.ID)
				if err != nil {
					return err
				}
				if exists {
					return integration.NewConflictError(
						fmt.Sprintf("course %s already has an active LMS link", course.ID))
				}
				return nil
			},
		},
		{
			Name:     "create-remote-course",
			Critical: true,
			Execute: func(ctx context.Context) error {
				id, err := o.lmsCourses.CreateCourse(ctx, integration.RemoteCourse{
					ShortName: shortName,
					FullName:  course.Name,
					Summary:   course.Description,
					StartDate: course.StartDate,
					EndDate:   course.EndDate,
				})
				if err != nil {
					return err
				}
				remoteCourseID = id
				return nil
			},
		},
		{
			Name:     "persist-course-link",
			Critical: true,
			Execute: func(ctx context.Context) error {
				link, err := integration.NewCourseLink(course.ID, remoteCourseID, shortName)
				if err != nil {
					return err
				}
				return o.courseLinks.Save(ctx, link)
			},
		},
		{
			Name:     "create-messaging-group",
			Critical: false,
			Execute: func(ctx context.Context) error {
				return o.createGroup(ctx, course)
			},
		},
	}

	if err := o.runner.Run(ctx, "course-create", steps); err != nil {
		return fmt.Errorf("Error al crear curso %s: %w", course.ShortName, err)
	}

	o.logger.Info("course synchronized with LMS",
		zap.String("course_id", course.ID.String()),
		zap.Int64("remote_course_id", remoteCourseID),
		zap.String("remote_short_name", shortName),
	)
	return nil
}

// PostUpdate runs after a local course update. No remote mutation is
// propagated today; name or date changes stay local and the link keeps
// pointing at the same remote course. Always best-effort.
func (o *CourseOrchestrator) PostUpdate(ctx context.Context, course *academic.Course) error {
	o.logger.Debug("course updated locally, no remote propagation",
		zap.String("course_id", course.ID.String()),
	)
	return nil
}

// PreDelete runs before a local course delete. Integration cleanup is
// advisory once a human decided to delete the course: every failure is
// logged as a warning and never blocks the deletion.
func (o *CourseOrchestrator) PreDelete(ctx context.Context, courseID uuid.UUID) error {
	link, err := o.courseLinks.FindByCourseID(ctx, courseID)
	switch {
	case errors.Is(err, integration.ErrCourseLinkNotFound):
		// Course was never synchronized, nothing to clean up on the LMS
	case err != nil:
		o.logger.Warn("could not load course link before delete",
			zap.String("course_id", courseID.String()), zap.Error(err))
	default:
		if err := o.lmsCourses.DeleteCourse(ctx, link.RemoteCourseID); err != nil {
			o.logger.Warn("could not delete remote course",
				zap.String("course_id", courseID.String()),
				zap.Int64("remote_course_id", link.RemoteCourseID),
				zap.Error(err))
		}
		if err := o.courseLinks.DeleteByCourseID(ctx, courseID); err != nil {
			o.logger.Warn("could not delete course link",
				zap.String("course_id", courseID.String()), zap.Error(err))
		}
	}

	o.deleteGroup(ctx, courseID)
	return nil
}

// VerifySync reports whether the course is known to be integrated:
// a CourseLink exists, or the LMS resolves its normalized short name.
// Diagnostic only; nothing gates on this.
func (o *CourseOrchestrator) VerifySync(ctx context.Context, course *academic.Course) (bool, error) {
	exists, err := o.courseLinks.ExistsByCourseID(ctx, course.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	_, err = o.lmsCourses.FindCourseIDByShortName(ctx, integration.NormalizeShortName(course.ShortName))
	if errors.Is(err, integration.ErrRemoteCourseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// createGroup creates the remote chat group for a course and records
// the mapping. Called only from a non-critical saga step.
func (o *CourseOrchestrator) createGroup(ctx context.Context, course *academic.Course) error {
	if !o.messaging.IsConfigured() {
		o.logger.Debug("messaging platform not configured, skipping group creation",
			zap.String("course_id", course.ID.String()))
		return nil
	}

	title := course.ShortName + " - " + course.Name
	info, err := o.messaging.CreateGroup(ctx, title)
	if err != nil {
		return err
	}

	group, err := integration.NewMessagingGroup(course.ID, info.GroupID, info.Title, info.InviteLink)
	if err != nil {
		return err
	}
	if err := o.groups.Save(ctx, group); err != nil {
		return err
	}

	o.logger.Info("messaging group created for course",
		zap.String("course_id", course.ID.String()),
		zap.String("group_id", info.GroupID),
	)
	return nil
}

// deleteGroup removes the remote chat group and its record, best-effort
func (o *CourseOrchestrator) deleteGroup(ctx context.Context, courseID uuid.UUID) {
	group, err := o.groups.FindByCourseID(ctx, courseID)
	if err != nil {
		if !errors.Is(err, integration.ErrGroupNotFound) {
			o.logger.Warn("could not load messaging group before delete",
				zap.String("course_id", courseID.String()), zap.Error(err))
		}
		return
	}

	if err := o.messaging.DeleteGroup(ctx, group.GroupID); err != nil {
		o.logger.Warn("could not delete remote messaging group",
			zap.String("course_id", courseID.String()),
			zap.String("group_id", group.GroupID),
			zap.Error(err))
	}
	if err := o.groups.DeleteByCourseID(ctx, courseID); err != nil {
		o.logger.Warn("could not delete messaging group record",
			zap.String("course_id", courseID.String()), zap.Error(err))
	}
}
