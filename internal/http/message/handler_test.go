package message

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pgagi/devops-assignment-backend/internal/http/api"
	applog "github.com/pgagi/devops-assignment-backend/internal/platform/logging"
	appmiddleware "github.com/pgagi/devops-assignment-backend/internal/platform/middleware"
	"github.com/pgagi/devops-assignment-backend/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())
	router.Use(
		appmiddleware.RequestID(),
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	Register(humachi.New(router, api.NewConfig("test")))
	return router
}

func TestGetJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/message", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "message-get-json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	want := `{"message":"You've successfully integrated the backend!"}`
	if got := strings.TrimSpace(resp.Body.String()); got != want {
		t.Fatalf("unexpected body:\n got: %s\nwant: %s", got, want)
	}
}

func TestGetCBOR(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/message", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Errorf("expected application/cbor, got %s", ct)
	}

	var data Data
	if err := cbor.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if data.Message != "You've successfully integrated the backend!" {
		t.Errorf("unexpected payload: %+v", data)
	}
}

func TestRejectsNonGETMethods(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/message", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", resp.Code)
			}
			if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
				t.Errorf("expected Allow: GET, got %q", allow)
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("expected application/problem+json, got %s", ct)
			}
		})
	}
}
