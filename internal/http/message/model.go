package message

// Data models the greeting payload.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"You've successfully integrated the backend!"`
}

// GetOutput is the response wrapper for GET /api/message.
type GetOutput struct {
	Body Data
}
