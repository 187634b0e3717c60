package health

// Data is the liveness payload. Field order is part of the wire contract.
type Data struct {
	Status  string `json:"status" doc:"Health state" example:"healthy"`
	Message string `json:"message" doc:"Human readable detail" example:"Backend is running successfully"`
}

// GetOutput is the response wrapper for GET /api/health.
type GetOutput struct {
	Body Data
}
