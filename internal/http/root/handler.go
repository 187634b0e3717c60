package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/pgagi/devops-assignment-backend/internal/platform/logging"
)

const (
	serviceName   = "DevOps Assignment Backend"
	statusRunning = "running"
)

// Register wires the root status route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service status",
		Tags:        []string{"Status"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "root status", zap.String("path", "/"))
	return &GetOutput{Body: Data{Message: serviceName, Status: statusRunning}}, nil
}
