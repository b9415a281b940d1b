package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/config"
	apimiddleware "taskhub/internal/delivery/api/middleware"
	"taskhub/internal/delivery/api/router"
	"taskhub/internal/delivery/api/router/handler"
	"taskhub/internal/infra/auth"
	"taskhub/internal/infra/persistence/document"
	"taskhub/internal/usecase/impl"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type testApp struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	bucket := memblob.OpenBucket(nil)
	store := document.NewStore(bucket, "app.db.json", logger)
	t.Cleanup(func() { _ = store.Close() })

	users := document.NewUserRepository(store)
	tasks := document.NewTaskRepository(store)
	tx := document.NewTransactionManager(store)

	tokens, err := auth.NewJWTService(testSecret, 7*24*time.Hour)
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    tx,
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Logger:       logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(userUC),
		ProfileHandler: handler.NewProfileHandler(impl.NewProfileService(tx, users, logger)),
		TaskHandler:    handler.NewTaskHandler(impl.NewTaskService(tx, tasks, logger)),
		SystemHandler:  handler.NewSystemHandler(impl.NewStoreService(document.NewStoreInspector(store), logger)),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
	})

	return &testApp{t: t, echo: e}
}

// do sends body (raw string or JSON-encoded value) and decodes the JSON reply.
func (a *testApp) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := sonic.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(a.t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec, out
}

func (a *testApp) register(name, email string) (token, userID string) {
	a.t.Helper()

	rec, out := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "password123",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	user := out["user"].(map[string]any)

	return out["token"].(string), user["id"].(string)
}

func (a *testApp) createTask(token string, body map[string]any) map[string]any {
	a.t.Helper()

	rec, out := a.do(http.MethodPost, "/api/tasks", token, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return out["task"].(map[string]any)
}

func details(out map[string]any, field string) []any {
	d, _ := out["details"].(map[string]any)
	msgs, _ := d[field].([]any)

	return msgs
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec, out := app.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	rec, out := app.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Alice", "email": "Alice@Example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, out["token"])

	user := out["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	t.Run("duplicate email", func(t *testing.T) {
		rec, out := app.do(http.MethodPost, "/api/auth/register", "", map[string]any{
			"name": "Alice again", "email": "alice@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation Error", out["error"])
		assert.Equal(t, "Email already registered", out["message"])
		assert.Equal(t, []any{"This email is already registered"}, details(out, "email"))
	})

	t.Run("missing fields", func(t *testing.T) {
		rec, out := app.do(http.MethodPost, "/api/auth/register", "", map[string]any{"name": "  ", "email": nil})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", out["message"])
		assert.Equal(t, []any{"Name is required"}, details(out, "name"))
		assert.Equal(t, []any{"Email is required"}, details(out, "email"))
		assert.Equal(t, []any{"Password is required"}, details(out, "password"))
		assert.NotEmpty(t, out["request_id"])
	})

	t.Run("bad credentials format", func(t *testing.T) {
		rec, out := app.do(http.MethodPost, "/api/auth/register", "", map[string]any{
			"name": "Bob", "email": "bob@", "password": "1234567",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []any{"Invalid email format"}, details(out, "email"))
		assert.Equal(t, []any{"Password must be at least 8 characters long"}, details(out, "password"))
	})

	t.Run("malformed json", func(t *testing.T) {
		rec, out := app.do(http.MethodPost, "/api/auth/register", "", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", out["code"])
	})
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	app.register("Alice", "alice@example.com")

	rec, out := app.do(http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ALICE@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, out["token"])
	assert.Equal(t, "alice@example.com", out["user"].(map[string]any)["email"])

	wrongRec, wrong := app.do(http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@example.com", "password": "wrong-password",
	})
	unknownRec, unknown := app.do(http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongRec.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownRec.Code)
	assert.Equal(t, "Invalid credentials", wrong["message"])
	assert.Equal(t, wrong["message"], unknown["message"])
	assert.Equal(t, wrong["code"], unknown["code"])
	assert.Equal(t, "Authentication Error", wrong["error"])
}

func TestAccessGate(t *testing.T) {
	app := newTestApp(t)
	token, userID := app.register("Alice", "alice@example.com")

	rec, out := app.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No authentication token provided", out["message"])

	rec, out = app.do(http.MethodGet, "/api/tasks", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", out["message"])

	rec, out = app.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, out["user"].(map[string]any)["id"])

	rec, out = app.do(http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", out["user"].(map[string]any)["name"])
}

func TestTasksLifecycle(t *testing.T) {
	app := newTestApp(t)
	token, userID := app.register("Alice", "alice@example.com")

	first := app.createTask(token, map[string]any{"title": "Buy milk"})
	assert.Equal(t, "active", first["status"])
	assert.Equal(t, userID, first["userId"])
	assert.Nil(t, first["description"])

	second := app.createTask(token, map[string]any{"title": "Report", "description": "Quarterly numbers", "status": "completed"})
	assert.Equal(t, "completed", second["status"])

	rec, out := app.do(http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := out["tasks"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, second["id"], list[0].(map[string]any)["id"], "newest first")

	rec, out = app.do(http.MethodGet, "/api/tasks?search=QUARTERLY", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, out["tasks"].([]any), 1)

	path := "/api/tasks/" + first["id"].(string)
	rec, out = app.do(http.MethodPut, path, token, map[string]any{"status": "archived", "description": "2 litres"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := out["task"].(map[string]any)
	assert.Equal(t, "archived", updated["status"])
	assert.Equal(t, "Buy milk", updated["title"])
	assert.Equal(t, "2 litres", updated["description"])

	rec, out = app.do(http.MethodPut, path, token, map[string]any{"description": nil})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, out["task"].(map[string]any)["description"])

	rec, out = app.do(http.MethodPut, path, token, map[string]any{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status value", out["message"])
	assert.Equal(t, []any{"Status must be one of: active, completed, archived"}, details(out, "status"))

	rec, out = app.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])

	rec, out = app.do(http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Task not found", out["message"])
	assert.Equal(t, "Not Found", out["error"])
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register("Alice", "alice@example.com")

	rec, out := app.do(http.MethodPost, "/api/tasks", token, map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"Title is required"}, details(out, "title"))

	rec, out = app.do(http.MethodPost, "/api/tasks", token, map[string]any{"title": "x", "status": "pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status value", out["message"])
}

func TestOwnership(t *testing.T) {
	app := newTestApp(t)
	aliceToken, _ := app.register("Alice", "alice@example.com")
	bobToken, _ := app.register("Bob", "bob@example.com")

	task := app.createTask(aliceToken, map[string]any{"title": "Private"})
	path := "/api/tasks/" + task["id"].(string)

	for _, tc := range []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]any{"title": "Stolen"}},
		{http.MethodDelete, nil},
	} {
		rec, out := app.do(tc.method, path, bobToken, tc.body)
		assert.Equal(t, http.StatusForbidden, rec.Code, tc.method)
		assert.Equal(t, "Access denied", out["message"], tc.method)
		assert.Equal(t, "Authorization Error", out["error"], tc.method)
	}

	rec, out := app.do(http.MethodGet, "/api/tasks", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, out["tasks"])

	rec, out = app.do(http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Private", out["task"].(map[string]any)["title"])

	rec, _ = app.do(http.MethodGet, "/api/tasks/not-a-uuid", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.register("Alice", "alice@example.com")
	app.register("Bob", "bob@example.com")

	rec, out := app.do(http.MethodPut, "/api/profile", token, map[string]any{"name": "Alice Cooper", "email": "cooper@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := out["user"].(map[string]any)
	assert.Equal(t, "Alice Cooper", user["name"])
	assert.Equal(t, "cooper@example.com", user["email"])

	rec, out = app.do(http.MethodPut, "/api/profile", token, map[string]any{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already in use", out["message"])
	assert.Equal(t, []any{"This email is already registered to another account"}, details(out, "email"))

	rec, out = app.do(http.MethodPut, "/api/profile", token, map[string]any{"name": nil})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"Name cannot be empty"}, details(out, "name"))

	rec, out = app.do(http.MethodPut, "/api/profile", token, map[string]any{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"Invalid email format"}, details(out, "email"))

	rec, _ = app.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "cooper@example.com", "password": "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitStore(t *testing.T) {
	app := newTestApp(t)

	rec, out := app.do(http.MethodGet, "/api/init", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Database initialized successfully", out["message"])
	assert.Equal(t, []any{"users", "tasks"}, out["tables"])
	assert.Equal(t, map[string]any{"users": "ready", "tasks": "ready"}, out["status"])
}

func TestUnknownRouteUsesErrorBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", out["error"])
	assert.Equal(t, "NOT_FOUND", out["code"])
	assert.Equal(t, "Resource not found", out["message"])
	assert.Equal(t, "req-123", out["request_id"])
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

