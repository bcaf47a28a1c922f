package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"personality_sessions_backend/internal/database"
	"personality_sessions_backend/internal/router"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	staticDir := t.TempDir()
	for name, content := range map[string]string{
		"index.html": "<html><body>landing</body></html>",
		"admin.html": "<html><body>dashboard</body></html>",
	} {
		if err := os.WriteFile(filepath.Join(staticDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	engine := gin.New()
	router.Setup(engine, db, staticDir)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestAPI_UpsertUserLifecycle(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/users", `{
		"email": "alice@example.com",
		"name": "Alice",
		"phone": "1234567890",
		"goals": ["confidence", "public speaking"],
		"experience": "beginner"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("first upsert status: %d body: %s", rec.Code, rec.Body.String())
	}
	var first map[string]interface{}
	decodeBody(t, rec, &first)
	if first["success"] != true {
		t.Fatalf("expected success, got %v", first)
	}
	firstID := first["userId"].(float64)
	if firstID == 0 {
		t.Fatal("expected non-zero userId")
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/users", `{
		"email": "alice@example.com",
		"name": "Alice Updated",
		"phone": "999",
		"goals": "confidence,leadership",
		"paymentStatus": "completed"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second upsert status: %d body: %s", rec.Code, rec.Body.String())
	}
	var second map[string]interface{}
	decodeBody(t, rec, &second)
	if second["userId"].(float64) != firstID {
		t.Fatalf("userId changed on repeat submission: %v vs %v", second["userId"], firstID)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/users/alice@example.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch status: %d body: %s", rec.Code, rec.Body.String())
	}
	var user struct {
		Name          string   `json:"name"`
		Goals         []string `json:"goals"`
		PaymentStatus string   `json:"payment_status"`
	}
	decodeBody(t, rec, &user)
	if user.Name != "Alice Updated" {
		t.Fatalf("expected overwritten name, got %q", user.Name)
	}
	if len(user.Goals) != 2 || user.Goals[0] != "confidence" || user.Goals[1] != "leadership" {
		t.Fatalf("goals not returned as list: %v", user.Goals)
	}
	if user.PaymentStatus != "completed" {
		t.Fatalf("expected payment status completed, got %q", user.PaymentStatus)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: %d", rec.Code)
	}
	var users []map[string]interface{}
	decodeBody(t, rec, &users)
	if len(users) != 1 {
		t.Fatalf("expected one user after two submissions, got %d", len(users))
	}
}

func TestAPI_GetUserByEmail_NotFound(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/users/ghost@example.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_UpsertUser_MissingEmail(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/users", `{"name": "No Email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAPI_Analytics_EmptyStore(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics status: %d", rec.Code)
	}
	var metrics map[string]interface{}
	decodeBody(t, rec, &metrics)

	for _, key := range []string{"totalUsers", "paidUsers", "bookedSessions", "recentUsers", "eventsByType", "usersByExperience", "usersByGoals"} {
		value, ok := metrics[key]
		if !ok {
			t.Fatalf("missing metric key %q in %v", key, metrics)
		}
		switch key {
		case "eventsByType", "usersByExperience", "usersByGoals":
			list, ok := value.([]interface{})
			if !ok || len(list) != 0 {
				t.Fatalf("%s: expected empty list, got %v", key, value)
			}
		default:
			if value.(float64) != 0 {
				t.Fatalf("%s: expected 0, got %v", key, value)
			}
		}
	}
}

func TestAPI_EventsFeedAnalytics(t *testing.T) {
	engine := setupTestRouter(t)

	for _, body := range []string{
		`{"userId": 1, "eventName": "page_view", "eventData": {"section": "hero"}}`,
		`{"userId": 1, "eventName": "page_view", "eventData": {"section": "pricing"}}`,
		`{"eventName": "cta_click", "eventData": "buy-now"}`,
	} {
		rec := doJSON(t, engine, http.MethodPost, "/api/events", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("track event status: %d body: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics", "")
	var metrics map[string]interface{}
	decodeBody(t, rec, &metrics)

	events := metrics["eventsByType"].([]interface{})
	var total float64
	for _, entry := range events {
		total += entry.(map[string]interface{})["count"].(float64)
	}
	if total != 3 {
		t.Fatalf("event counts sum to %v, want 3", total)
	}
}

func TestAPI_SessionFlow(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/sessions", `{
		"userId": 5,
		"sessionDate": "2026-09-15T10:30:00Z",
		"notes": "first session"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create session status: %d body: %s", rec.Code, rec.Body.String())
	}
	var created map[string]interface{}
	decodeBody(t, rec, &created)
	sessionID := created["sessionId"].(float64)
	if sessionID == 0 {
		t.Fatal("expected non-zero sessionId")
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/users/5/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list sessions status: %d body: %s", rec.Code, rec.Body.String())
	}
	var sessions []map[string]interface{}
	decodeBody(t, rec, &sessions)
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	if sessions[0]["session_type"] != "personality_development" {
		t.Fatalf("expected default session type, got %v", sessions[0]["session_type"])
	}
	if sessions[0]["status"] != "scheduled" {
		t.Fatalf("expected default status, got %v", sessions[0]["status"])
	}

	rec = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/sessions/%.0f", sessionID), `{
		"status": "needs-reschedule",
		"notes": "client travelling"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update session status: %d body: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/users/5/sessions", "")
	decodeBody(t, rec, &sessions)
	if sessions[0]["status"] != "needs-reschedule" {
		t.Fatalf("status not updated: %v", sessions[0]["status"])
	}
	if sessions[0]["notes"] != "client travelling" {
		t.Fatalf("notes not updated: %v", sessions[0]["notes"])
	}
}

func TestAPI_Health(t *testing.T) {
	engine := setupTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status: %d", rec.Code)
	}
	var health map[string]interface{}
	decodeBody(t, rec, &health)
	if health["status"] != "healthy" {
		t.Fatalf("expected healthy, got %v", health["status"])
	}
	if health["database"] != "connected" {
		t.Fatalf("expected connected, got %v", health["database"])
	}
	if health["timestamp"] == "" {
		t.Fatal("expected a timestamp")
	}
}

func TestAPI_StaticPages(t *testing.T) {
	engine := setupTestRouter(t)

	for path, want := range map[string]string{
		"/":      "landing",
		"/admin": "dashboard",
	} {
		rec := doJSON(t, engine, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status: %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%s: body %q does not contain %q", path, rec.Body.String(), want)
		}
	}
}
