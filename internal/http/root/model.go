package root

// Data is the service status returned at the API root.
type Data struct {
	Message string `json:"message" doc:"Service name" example:"DevOps Assignment Backend"`
	Status  string `json:"status" doc:"Process state" example:"running"`
}

// GetOutput is the response wrapper for GET /.
type GetOutput struct {
	Body Data
}
