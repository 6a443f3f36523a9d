package delivery_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"postbase-backend/internal/auth/delivery"
	authdomain "postbase-backend/internal/auth/domain"
	"postbase-backend/internal/auth/repository"
	"postbase-backend/pkg/config"
	"postbase-backend/pkg/response"
	"postbase-backend/pkg/token"
)

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, tokens *token.Service, users repository.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.Use(response.ErrorHandler(&config.Config{Env: "test"}, logger))
	r.GET("/protected", delivery.Authenticate(tokens, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": delivery.CurrentUser(c).ID})
	})
	r.GET("/admin", delivery.Authenticate(tokens, users), delivery.Authorize(authdomain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func newUserStore(t *testing.T) repository.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewUserRepository(db)
}

func doGet(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	r := newTestRouter(t, tokens, newUserStore(t))

	w := doGet(r, "/protected", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeError(t, w); env.Error.Message != "Access token required" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	r := newTestRouter(t, tokens, newUserStore(t))

	w := doGet(r, "/protected", "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeError(t, w); env.Error.Message != "Invalid token" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := token.NewService("test-secret", -time.Minute, 24*time.Hour)
	pair, err := expired.IssuePair("user-1", "a@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	r := newTestRouter(t, tokens, newUserStore(t))

	w := doGet(r, "/protected", pair.AccessToken)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeError(t, w); env.Error.Message != "Token expired" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	pair, err := tokens.IssuePair("no-such-user", "ghost@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	r := newTestRouter(t, tokens, newUserStore(t))

	w := doGet(r, "/protected", pair.AccessToken)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeError(t, w); env.Error.Message != "User not found" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestAuthenticate_DegradedModeWithoutStore(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	pair, err := tokens.IssuePair("claims-only-id", "claims@example.com")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	r := newTestRouter(t, tokens, nil)

	w := doGet(r, "/protected", pair.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 in degraded mode, got %d (%s)", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["id"] != "claims-only-id" {
		t.Fatalf("expected claims identity, got %q", body["id"])
	}
}

func TestAuthorize_RoleGate(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour, 24*time.Hour)
	users := newUserStore(t)

	regular := &authdomain.User{Email: "user@example.com", Role: authdomain.RoleUser}
	if err := users.Create(regular); err != nil {
		t.Fatalf("create user: %v", err)
	}
	admin := &authdomain.User{Email: "admin@example.com", Role: authdomain.RoleAdmin}
	if err := users.Create(admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	r := newTestRouter(t, tokens, users)

	userPair, err := tokens.IssuePair(regular.ID, regular.Email)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	w := doGet(r, "/admin", userPair.AccessToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for role user, got %d", w.Code)
	}
	if env := decodeError(t, w); env.Error.Message != "Insufficient permissions" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}

	adminPair, err := tokens.IssuePair(admin.ID, admin.Email)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	w = doGet(r, "/admin", adminPair.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for role admin, got %d (%s)", w.Code, w.Body.String())
	}
}
