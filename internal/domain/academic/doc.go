// Package academic contains the Academic bounded context: courses, the
// people who take them and their enrollments.
//
// The entities here are ordinary validated persistence. The interesting
// lifecycle behavior (keeping them consistent with the LMS and the
// messaging platform) lives in the integration context and the sync
// orchestrators; this package only exposes the ports those components
// need to read and, in the compensation paths, undo local state.
package academic
