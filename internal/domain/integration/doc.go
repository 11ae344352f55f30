// Package integration contains the Integration bounded context.
// It keeps local courses and enrollments consistent with two external
// systems: the learning-management platform (LMS) and the group-messaging
// platform.
//
// Key concepts:
//   - UserGateway / CourseGateway / EnrolmentGateway: ports to the LMS
//   - GroupGateway: port to the messaging platform
//   - CourseLink / EnrollmentLink / MessagingGroup: persisted mappings
//     between local entities and their remote counterparts
//   - saga Runner: ordered steps with per-step criticality and
//     compensation, run by the sync orchestrators
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure layer
package integration
