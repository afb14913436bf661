package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stridehq/stride/internal/app"
	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/routes"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		AppName:      "Stride",
		AppEnv:       "test",
		DBDriver:     "sqlite",
		DBConnection: filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)",
		BcryptCost:   bcrypt.MinCost,
	}

	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Close()
	})

	srv := httptest.NewServer(routes.SetupRoutes(a))
	t.Cleanup(srv.Close)
	return srv
}

// do sends a JSON request and decodes the JSON response body into out.
func do(t *testing.T, srv *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func register(t *testing.T, srv *httptest.Server, username, password string) int64 {
	t.Helper()

	var user map[string]any
	status := do(t, srv, "POST", "/users", map[string]any{"username": username, "password": password}, &user)
	require.Equal(t, http.StatusCreated, status)
	return int64(user["id"].(float64))
}

func createHabit(t *testing.T, srv *httptest.Server, userID int64, name string) int64 {
	t.Helper()

	var habit map[string]any
	status := do(t, srv, "POST", "/habits", map[string]any{"user_id": userID, "habit_name": name}, &habit)
	require.Equal(t, http.StatusCreated, status)
	return int64(habit["id"].(float64))
}

func TestRegister(t *testing.T) {
	srv := newTestServer(t)

	var user map[string]any
	status := do(t, srv, "POST", "/users", map[string]any{"username": "alice", "password": "secret1"}, &user)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "alice", user["username"])
	assert.NotZero(t, user["id"])
	assert.NotContains(t, user, "password_hash")

	var body map[string]any
	status = do(t, srv, "POST", "/users", map[string]any{"username": "alice", "password": "another1"}, &body)
	assert.Equal(t, http.StatusConflict, status)

	status = do(t, srv, "POST", "/users", map[string]any{"username": "bob", "password": "short"}, &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = do(t, srv, "POST", "/users", map[string]any{"username": "   ", "password": "secret1"}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)
	id := register(t, srv, "alice", "secret1")

	var user map[string]any
	status := do(t, srv, "POST", "/login", map[string]any{"username": "alice", "password": "secret1"}, &user)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(id), user["id"])

	// Wrong password and unknown username return identical responses
	var wrongPassword, unknownUser map[string]any
	s1 := do(t, srv, "POST", "/login", map[string]any{"username": "alice", "password": "wrong-password"}, &wrongPassword)
	s2 := do(t, srv, "POST", "/login", map[string]any{"username": "nobody", "password": "secret1"}, &unknownUser)
	assert.Equal(t, http.StatusUnauthorized, s1)
	assert.Equal(t, http.StatusUnauthorized, s2)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestLookupUser(t *testing.T) {
	srv := newTestServer(t)
	id := register(t, srv, "alice", "secret1")

	var user map[string]any
	status := do(t, srv, "GET", "/users?username=alice", nil, &user)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(id), user["id"])
	assert.NotContains(t, user, "password_hash")

	var body map[string]any
	status = do(t, srv, "GET", "/users?username=nobody", nil, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "GET", "/users", nil, &body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHabitRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	userID := register(t, srv, "alice", "secret1")

	var habit map[string]any
	status := do(t, srv, "POST", "/habits", map[string]any{
		"user_id":     userID,
		"habit_name":  "Morning run",
		"category":    "Health",
		"description": "x",
	}, &habit)
	require.Equal(t, http.StatusCreated, status)

	var habits []map[string]any
	status = do(t, srv, "GET", fmt.Sprintf("/habits?user_id=%d", userID), nil, &habits)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, habits, 1)
	assert.Equal(t, "Morning run", habits[0]["habit_name"])
	assert.Equal(t, "Health", habits[0]["category"])
	assert.Equal(t, "x", habits[0]["description"])
	assert.NotEmpty(t, habits[0]["created_at"])
}

func TestHabitOmittedOptionalsAreNull(t *testing.T) {
	srv := newTestServer(t)
	userID := register(t, srv, "alice", "secret1")
	createHabit(t, srv, userID, "Read")

	var habits []map[string]any
	status := do(t, srv, "GET", fmt.Sprintf("/habits?user_id=%d", userID), nil, &habits)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, habits, 1)

	// null, not ""
	assert.Contains(t, habits[0], "category")
	assert.Nil(t, habits[0]["category"])
	assert.Nil(t, habits[0]["description"])
}

func TestHabitUpdateAndDeleteOwnership(t *testing.T) {
	srv := newTestServer(t)
	alice := register(t, srv, "alice", "secret1")
	bob := register(t, srv, "bob", "secret1")
	habitID := createHabit(t, srv, alice, "Run")

	var body map[string]any

	// Another user's id and a nonexistent habit id report the same outcome
	status := do(t, srv, "PUT", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": bob, "habit_name": "Hijacked"}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "PUT", "/habits/99999",
		map[string]any{"user_id": alice, "habit_name": "Ghost"}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "PUT", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": alice, "habit_name": ""}, &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = do(t, srv, "PUT", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": alice, "habit_name": "Run 5k"}, &body)
	assert.Equal(t, http.StatusOK, status)

	status = do(t, srv, "DELETE", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": bob}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "DELETE", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": alice}, &body)
	assert.Equal(t, http.StatusOK, status)
}

func TestProgressConflicts(t *testing.T) {
	srv := newTestServer(t)
	userID := register(t, srv, "alice", "secret1")
	habitID := createHabit(t, srv, userID, "Run")

	var entry map[string]any
	status := do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "2026-08-27", "status": true}, &entry)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "2026-08-27", entry["date"])
	assert.Equal(t, true, entry["status"])

	var body map[string]any

	// Same (habit, date) twice: conflict, not overwrite
	status = do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "2026-08-27", "status": false}, &body)
	assert.Equal(t, http.StatusConflict, status)

	status = do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "not-a-date", "status": true}, &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "2026-08-28"}, &body)
	assert.Equal(t, http.StatusBadRequest, status, "missing status is rejected")

	// Updating a second entry onto an occupied date also conflicts
	var second map[string]any
	status = do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "2026-08-28", "status": true}, &second)
	require.Equal(t, http.StatusCreated, status)
	secondID := int64(second["id"].(float64))

	status = do(t, srv, "PUT", fmt.Sprintf("/progress/%d", secondID),
		map[string]any{"habit_id": habitID, "date": "2026-08-27", "status": true}, &body)
	assert.Equal(t, http.StatusConflict, status)

	status = do(t, srv, "PUT", fmt.Sprintf("/progress/%d", secondID),
		map[string]any{"habit_id": habitID, "date": "2026-08-28", "status": false}, &body)
	assert.Equal(t, http.StatusOK, status)
}

func TestProgressOwnershipViaParent(t *testing.T) {
	srv := newTestServer(t)
	userID := register(t, srv, "alice", "secret1")
	runID := createHabit(t, srv, userID, "Run")
	readID := createHabit(t, srv, userID, "Read")

	var entry map[string]any
	status := do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": runID, "date": "2026-08-28", "status": true}, &entry)
	require.Equal(t, http.StatusCreated, status)
	entryID := int64(entry["id"].(float64))

	var body map[string]any
	status = do(t, srv, "PUT", fmt.Sprintf("/progress/%d", entryID),
		map[string]any{"habit_id": readID, "date": "2026-08-28", "status": false}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "DELETE", fmt.Sprintf("/progress/%d", entryID),
		map[string]any{"habit_id": readID}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "DELETE", fmt.Sprintf("/progress/%d", entryID),
		map[string]any{"habit_id": runID}, &body)
	assert.Equal(t, http.StatusOK, status)
}

func TestDeleteHabitCascadesToProgress(t *testing.T) {
	srv := newTestServer(t)
	userID := register(t, srv, "alice", "secret1")
	habitID := createHabit(t, srv, userID, "Run")

	var entry map[string]any
	status := do(t, srv, "POST", "/progress",
		map[string]any{"habit_id": habitID, "date": "2026-08-28", "status": true}, &entry)
	require.Equal(t, http.StatusCreated, status)
	entryID := int64(entry["id"].(float64))

	var body map[string]any
	status = do(t, srv, "DELETE", fmt.Sprintf("/habits/%d", habitID),
		map[string]any{"user_id": userID}, &body)
	require.Equal(t, http.StatusOK, status)

	var entries []map[string]any
	status = do(t, srv, "GET", fmt.Sprintf("/progress?habit_id=%d", habitID), nil, &entries)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, entries)

	// Orphaned entry ids are gone for good
	status = do(t, srv, "PUT", fmt.Sprintf("/progress/%d", entryID),
		map[string]any{"habit_id": habitID, "date": "2026-08-28", "status": false}, &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = do(t, srv, "DELETE", fmt.Sprintf("/progress/%d", entryID),
		map[string]any{"habit_id": habitID}, &body)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListMissingQueryParams(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]any
	status := do(t, srv, "GET", "/habits", nil, &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = do(t, srv, "GET", "/progress", nil, &body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]any
	status := do(t, srv, "GET", "/healthz", nil, &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
