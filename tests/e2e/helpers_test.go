//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	postgres "github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	changerepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/change"
	projectrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/project"
	sharedrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/shared"
	tagrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/tag"
	taskrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/task"
	"github.com/mpetrenko/tasktrail/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/token"
	userrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/user"
	authpkg "github.com/mpetrenko/tasktrail/internal/auth"
	"github.com/mpetrenko/tasktrail/internal/config"
	authsvc "github.com/mpetrenko/tasktrail/internal/service/auth"
	changesvc "github.com/mpetrenko/tasktrail/internal/service/change"
	projectsvc "github.com/mpetrenko/tasktrail/internal/service/project"
	sharingsvc "github.com/mpetrenko/tasktrail/internal/service/sharing"
	tagsvc "github.com/mpetrenko/tasktrail/internal/service/tag"
	tasksvc "github.com/mpetrenko/tasktrail/internal/service/task"
	"github.com/mpetrenko/tasktrail/internal/transport/rest"
)

type testServer struct {
	*httptest.Server
}

// setupTestServer wires the full stack (repos, services, router) over the
// shared test database and returns a running HTTP server.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	txm := postgres.NewTxManager(pool)
	logger := slog.Default()

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-secret-that-is-long-enough-32-chars",
		JWTIssuer:        "tasktrail",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: bcrypt.MinCost, // fast tests
	}
	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	tags := tagrepo.New(pool)
	tasks := taskrepo.New(pool)
	shares := sharedrepo.New(pool)
	changes := changerepo.New(pool)

	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandler(authsvc.NewService(logger, users, tokens, jwtManager, authCfg), logger),
		Projects: rest.NewProjectHandler(projectsvc.NewService(logger, projects, changes, txm), logger),
		Tags:     rest.NewTagHandler(tagsvc.NewService(logger, tags, changes, txm), logger),
		Tasks:    rest.NewTaskHandler(tasksvc.NewService(logger, tasks, projects, tags, changes, txm), logger),
		Shared:   rest.NewSharedHandler(sharingsvc.NewService(logger, shares, tasks, projects, tags, users, changes, txm), logger),
		Changes:  rest.NewChangeHandler(changesvc.NewService(logger, changes, projects, tasks, tags, shares), logger),
		Health:   rest.NewHealthHandler(pool),
	}

	router := rest.NewRouter(handlers, jwtManager, config.CORSConfig{AllowedOrigins: "*"}, logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{Server: server}
}

// restRequest performs a JSON request against the test server. A non-empty
// token goes into the Authorization header.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into a generic map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes a plain JSON array response and closes the body.
func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var list []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

// registerUser registers a fresh user and returns its access token and id.
func registerUser(t *testing.T, ts *testServer) (token string, userID string) {
	t.Helper()

	suffix := uuid.NewString()
	resp := restRequest(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    fmt.Sprintf("e2e-%s@example.com", suffix),
		"username": fmt.Sprintf("e2e-%s", suffix),
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	userID, ok = user["id"].(string)
	require.True(t, ok, "expected user id")

	return token, userID
}

// createProject creates a project and returns its id.
func createProject(t *testing.T, ts *testServer, token, title string) string {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/projects", token, map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	id, ok := body["id"].(string)
	require.True(t, ok, "expected project id")
	return id
}

// createTask creates a task from the given request body and returns its id.
func createTask(t *testing.T, ts *testServer, token string, body map[string]any) string {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/tasks", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	decoded := decodeBody(t, resp)
	id, ok := decoded["id"].(string)
	require.True(t, ok, "expected task id")
	return id
}
