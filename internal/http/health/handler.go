package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/pgagi/devops-assignment-backend/internal/platform/logging"
)

// Path is where orchestration probes find the health check.
const Path = "/api/health"

// Register wires the health check route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Health check",
		Description: "Liveness probe for load balancers and orchestrators.",
		Tags:        []string{"Status"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "health check", zap.String("path", Path))
	return &GetOutput{Body: Data{Status: "healthy", Message: "Backend is running successfully"}}, nil
}
