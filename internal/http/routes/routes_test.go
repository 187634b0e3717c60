package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/pgagi/devops-assignment-backend/internal/http/api"
	"github.com/pgagi/devops-assignment-backend/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())
	Register(humachi.New(router, api.NewConfig("test")))
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path string
		want map[string]string
	}{
		{"/", map[string]string{"message": "DevOps Assignment Backend", "status": "running"}},
		{"/api/health", map[string]string{"status": "healthy", "message": "Backend is running successfully"}},
		{"/api/message", map[string]string{"message": "You've successfully integrated the backend!"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			var got map[string]string
			if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
				t.Fatalf("json unmarshal: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d fields, got %v", len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("field %q: expected %q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	router := newTestRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOpenAPIListsOperations(t *testing.T) {
	router := chi.NewRouter()
	a := humachi.New(router, api.NewConfig("test"))
	Register(a)

	paths := a.OpenAPI().Paths
	for _, p := range []string{"/", "/api/health", "/api/message"} {
		if item, ok := paths[p]; !ok || item.Get == nil {
			t.Errorf("expected GET operation for %s", p)
		}
	}
}
