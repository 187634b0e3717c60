package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/pgagi/devops-assignment-backend/internal/http/health"
	"github.com/pgagi/devops-assignment-backend/internal/http/message"
	"github.com/pgagi/devops-assignment-backend/internal/http/root"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	root.Register(api)
	health.Register(api)
	message.Register(api)
}
