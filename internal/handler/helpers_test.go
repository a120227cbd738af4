package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/tasklist/internal/handler"
	"github.com/msomdec/tasklist/internal/repository/sqlite"
	"github.com/msomdec/tasklist/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

type testEnv struct {
	db     *sqlite.DB
	auth   *service.AuthService
	tasks  *service.TaskService
	tokens *service.TokenService
	srv    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := service.NewTokenService(testJWTSecret)
	env := &testEnv{
		db:     db,
		tokens: tokens,
		auth:   service.NewAuthService(db.Users(), service.NewPasswordHasher(4), tokens),
		tasks:  service.NewTaskService(db.Tasks()),
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, env.auth, env.tasks, db)
	env.srv = httptest.NewServer(handler.RequestLogger(handler.SecurityHeaders(mux)))
	t.Cleanup(env.srv.Close)

	return env
}

// do sends a request with an optional JSON body and bearer token and
// decodes the JSON response into a map.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

// registerAndLogin creates an account through the API and returns its token.
func (e *testEnv) registerAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()

	status, _ := e.do(t, http.MethodPost, "/registro", "", map[string]string{
		"nome": name, "email": email, "senha": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, status)
	}

	status, body := e.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "senha": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, status)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: expected token in response", email)
	}
	return token
}
