package message

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/pgagi/devops-assignment-backend/internal/platform/logging"
)

const greeting = "You've successfully integrated the backend!"

// Register wires the greeting route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-message",
		Method:      http.MethodGet,
		Path:        "/api/message",
		Summary:     "Integration greeting",
		Tags:        []string{"Message"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "message get", zap.String("path", "/api/message"))
	return &GetOutput{Body: Data{Message: greeting}}, nil
}
