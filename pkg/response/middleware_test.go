package response_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"postbase-backend/pkg/apperror"
	"postbase-backend/pkg/config"
	"postbase-backend/pkg/response"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
		Timestamp  string `json:"timestamp"`
		Details    any    `json:"details"`
	} `json:"error"`
}

func newRouter(t *testing.T, cfg *config.Config, fail error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.Use(response.ErrorHandler(cfg, logger))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(fail)
	})
	r.NoRoute(response.NotFoundHandler())
	return r
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestErrorHandler_OperationalMessageVerbatim(t *testing.T) {
	r := newRouter(t, &config.Config{Env: "development"}, apperror.Conflict("User with this email already exists"))

	w, env := get(r, "/boom")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected success=false")
	}
	if env.Error.Message != "User with this email already exists" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
	if env.Error.StatusCode != http.StatusConflict {
		t.Fatalf("statusCode mismatch: %d", env.Error.StatusCode)
	}
	if env.Error.Timestamp == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestErrorHandler_MasksInternalErrors(t *testing.T) {
	cause := apperror.Internal("Failed to fetch users", errors.New("connection refused"))

	r := newRouter(t, &config.Config{Env: "development"}, cause)
	w, env := get(r, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if env.Error.Message != "Internal server error" {
		t.Fatalf("internal detail leaked: %q", env.Error.Message)
	}
	if env.Error.Details == nil {
		t.Fatal("expected details outside production")
	}

	r = newRouter(t, &config.Config{Env: "production"}, cause)
	_, env = get(r, "/boom")
	if env.Error.Details != nil {
		t.Fatalf("details must be suppressed in production, got %v", env.Error.Details)
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	r := newRouter(t, &config.Config{Env: "development"},
		apperror.Validation("Title is required", "Content is required"))

	w, env := get(r, "/boom")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	details, ok := env.Error.Details.([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("expected 2 detail messages, got %v", env.Error.Details)
	}
}

func TestNotFoundHandler(t *testing.T) {
	r := newRouter(t, &config.Config{Env: "development"}, apperror.NotFound("unused"))

	w, env := get(r, "/missing/route")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env.Error.Message != "Route /missing/route not found" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}
