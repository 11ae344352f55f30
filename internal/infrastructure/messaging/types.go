package messaging

// groupResponse is a group record returned by the messaging gateway
type groupResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	InviteLink string `json:"invite_link"`
}

// createGroupRequest is the body of a group creation call
type createGroupRequest struct {
	Title string `json:"title"`
}

// errorResponse is the error envelope of the messaging gateway
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
