package lms

// remoteUser is a user record returned by the LMS
type remoteUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// remoteCourse is a course record returned by the LMS
type remoteCourse struct {
	ID        int64  `json:"id"`
	ShortName string `json:"shortname"`
	FullName  string `json:"fullname"`
}

// coursesByFieldResponse is the envelope of core_course_get_courses_by_field
type coursesByFieldResponse struct {
	Courses  []remoteCourse `json:"courses"`
	Warnings []wsWarning    `json:"warnings"`
}

// searchCoursesResponse is the envelope of core_course_search_courses
type searchCoursesResponse struct {
	Total   int            `json:"total"`
	Courses []remoteCourse `json:"courses"`
}

// wsWarning is an in-band warning attached to an otherwise successful
// web-service response. Critical vs. non-critical is decided by
// WarningCode, never by the mere presence of a warning.
type wsWarning struct {
	Item        string `json:"item"`
	ItemID      int64  `json:"itemid"`
	WarningCode string `json:"warningcode"`
	Message     string `json:"message"`
}

// enrolResponse is the (possibly null) envelope of enrol_manual_enrol_users
type enrolResponse struct {
	Warnings []wsWarning `json:"warnings"`
}

// deleteCoursesResponse is the envelope of core_course_delete_courses
type deleteCoursesResponse struct {
	Warnings []wsWarning `json:"warnings"`
}

// wsException is the in-band error envelope the LMS returns with HTTP
// 200 when a call fails
type wsException struct {
	Exception string `json:"exception"`
	ErrorCode string `json:"errorcode"`
	Message   string `json:"message"`
}
