package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/wavehouse/studio-booking/internal/app"
	"github.com/wavehouse/studio-booking/internal/config"
	"github.com/wavehouse/studio-booking/internal/testsupport"
)

type testServer struct {
	t      *testing.T
	app    *app.App
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

func newTestServerWith(t *testing.T, configure func(cfg *config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("studio-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cfg := testsupport.NewConfig(t)
	cfg.Admin.PasswordHash = string(hash)
	if configure != nil {
		configure(cfg)
	}

	a, err := app.NewWithDB(context.Background(), cfg, zaptest.NewLogger(t), testsupport.NewDB(t))
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	t.Cleanup(a.Audit.Close)

	r := gin.New()
	RegisterRoutes(r, a)

	return &testServer{t: t, app: a, router: r}
}

func (s *testServer) do(method, path string, body any, token string) (int, map[string]any) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			s.t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	return w.Code, out
}

func (s *testServer) login() string {
	s.t.Helper()

	status, body := s.do(http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "studio-pass",
	}, "")
	if status != http.StatusOK {
		s.t.Fatalf("login: expected 200, got %d %v", status, body)
	}
	return body["token"].(string)
}

func TestVerificationFlow(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodGet, "/api/verification/status/a@x.com", nil, "")
	if status != http.StatusOK || body["exists"] != false || body["verification_status"] != "new_client" {
		t.Fatalf("unexpected status for unknown email: %d %v", status, body)
	}

	status, body = s.do(http.MethodPost, "/api/verification/create-session", map[string]string{
		"email": "a@x.com",
		"name":  "Ada",
	}, "")
	if status != http.StatusOK || body["mock"] != true || body["url"] != "javascript:void(0)" {
		t.Fatalf("create-session: %d %v", status, body)
	}

	for i := 0; i < 2; i++ {
		status, body = s.do(http.MethodPost, "/api/submit-booking", map[string]string{
			"name":       "Ada",
			"email":      "a@x.com",
			"date":       "2026-05-01",
			"start_time": "10:00",
			"end_time":   "12:00",
		}, "")
		if status != http.StatusOK || body["needs_verification"] != true {
			t.Fatalf("submit-booking: %d %v", status, body)
		}
	}

	status, body = s.do(http.MethodPost, "/api/verification/check-client", map[string]string{"email": "a@x.com"}, "")
	if status != http.StatusOK || body["client_exists"] != true || body["needs_verification"] != true || body["total_bookings"] != float64(2) {
		t.Fatalf("check-client: %d %v", status, body)
	}

	status, _ = s.do(http.MethodPost, "/api/verification/mark-verified", map[string]string{"email": "a@x.com"}, "")
	if status != http.StatusUnauthorized {
		t.Errorf("mark-verified without token: expected 401, got %d", status)
	}

	token := s.login()

	status, body = s.do(http.MethodPost, "/api/verification/mark-verified", map[string]string{"email": "a@x.com"}, token)
	if status != http.StatusOK || body["status"] != "verified" || body["updated_bookings"] != float64(2) {
		t.Fatalf("mark-verified: %d %v", status, body)
	}

	status, body = s.do(http.MethodGet, "/api/verification/status/A@X.com", nil, "")
	if status != http.StatusOK || body["is_verified"] != true || body["total_bookings"] != float64(2) {
		t.Fatalf("status after verification: %d %v", status, body)
	}

	status, body = s.do(http.MethodGet, "/api/admin/bookings?status=pending_confirmation", nil, token)
	if status != http.StatusOK || body["total"] != float64(2) {
		t.Fatalf("admin bookings: %d %v", status, body)
	}

	first := body["data"].([]any)[0].(map[string]any)
	id := int(first["id"].(float64))

	status, body = s.do(http.MethodPatch, fmt.Sprintf("/api/admin/bookings/%d/confirm", id), nil, token)
	if status != http.StatusOK || body["status"] != "confirmed" {
		t.Fatalf("confirm: %d %v", status, body)
	}

	status, body = s.do(http.MethodPatch, fmt.Sprintf("/api/admin/bookings/%d/cancel", id), nil, token)
	if status != http.StatusBadRequest || body["error_code"] != "invalid_state" {
		t.Errorf("cancel confirmed booking: expected 400 invalid_state, got %d %v", status, body)
	}
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
		expectedCode   string
	}{
		{"check_missing_email", http.MethodPost, "/api/verification/check-client", map[string]string{}, http.StatusBadRequest, "email_required"},
		{"session_missing_name", http.MethodPost, "/api/verification/create-session", map[string]string{"email": "a@x.com"}, http.StatusBadRequest, "email_and_name_required"},
		{"complete_unknown", http.MethodPost, "/api/verification/complete-mock", map[string]string{"email": "ghost@x.com"}, http.StatusNotFound, "client_not_found"},
		{"send_email_unknown", http.MethodPost, "/api/verification/send-email", map[string]string{"email": "ghost@x.com", "name": "G"}, http.StatusNotFound, "client_not_found"},
		{"booking_bad_date", http.MethodPost, "/submit-booking", map[string]string{"email": "a@x.com", "name": "Ada", "date": "x", "start_time": "10:00", "end_time": "11:00"}, http.StatusBadRequest, "invalid_date"},
		{"contact_missing_message", http.MethodPost, "/api/contact", map[string]string{"email": "a@x.com", "name": "Ada"}, http.StatusBadRequest, "message_required"},
		{"login_bad_password", http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "nope"}, http.StatusUnauthorized, "invalid_credentials"},
		{"admin_without_token", http.MethodGet, "/api/admin/clients", nil, http.StatusUnauthorized, "missing_authorization_header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.do(tt.method, tt.path, tt.body, "")
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d %v", tt.expectedStatus, status, body)
			}
			if body["error_code"] != tt.expectedCode {
				t.Errorf("expected code %s, got %v", tt.expectedCode, body["error_code"])
			}
		})
	}
}

func TestCompleteMockAndContact(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodPost, "/api/verification/create-session", map[string]string{"email": "a@x.com", "name": "Ada"}, "")

	status, body := s.do(http.MethodPost, "/api/verification/complete-mock", map[string]string{"email": "a@x.com"}, "")
	if status != http.StatusOK || body["status"] != "verified" || body["message"] != "Mock verification completed successfully" {
		t.Fatalf("complete-mock: %d %v", status, body)
	}

	status, body = s.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "a@x.com",
		"message": "Do you have a vocal booth?",
	}, "")
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("contact: %d %v", status, body)
	}

	token := s.login()
	status, body = s.do(http.MethodGet, "/api/admin/clients?query=ada", nil, token)
	if status != http.StatusOK || body["total"] != float64(1) {
		t.Errorf("clients: %d %v", status, body)
	}

	// Drain queued audit writes before reading them back.
	s.app.Audit.Close()

	status, body = s.do(http.MethodGet, "/api/admin/audit-logs?action=contact_submitted&email=A@X.com", nil, token)
	if status != http.StatusOK || body["total"] != float64(1) || body["page"] != float64(1) {
		t.Fatalf("audit-logs: %d %v", status, body)
	}
	entry := body["data"].([]any)[0].(map[string]any)
	if entry["action"] != "contact_submitted" {
		t.Errorf("expected contact_submitted, got %v", entry["action"])
	}

	status, _ = s.do(http.MethodGet, "/api/admin/audit-logs", nil, "")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", status)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodGet, "/health", nil, "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health: %d %v", status, body)
	}
}

func TestExpiredOperationTimeoutReturns504(t *testing.T) {
	s := newTestServerWith(t, func(cfg *config.Config) {
		cfg.OperationTimeout = time.Nanosecond
	})

	status, body := s.do(http.MethodPost, "/api/verification/check-client", map[string]string{"email": "a@x.com"}, "")
	if status != http.StatusGatewayTimeout || body["error_code"] != "timeout" {
		t.Errorf("expected 504 timeout, got %d %v", status, body)
	}
}
