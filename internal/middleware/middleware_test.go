package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := jwt.MapClaims{"sub": "admin", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not_bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"wrong_secret", "Bearer " + signed(t, "other", valid), http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "admin", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"not_admin", "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "bob", "role": "staff", "exp": time.Now().Add(time.Hour).Unix()}), http.StatusUnauthorized},
		{"valid", "Bearer " + signed(t, "secret", valid), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", AdminAuth("secret"), func(c *gin.Context) {
				c.String(http.StatusOK, Actor(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus == http.StatusOK && w.Body.String() != "admin" {
				t.Errorf("expected actor admin, got %s", w.Body.String())
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://wavehousela.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedAllow  string
	}{
		{"allowed", http.MethodGet, "https://wavehousela.com", http.StatusOK, "https://wavehousela.com"},
		{"other_origin", http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "https://wavehousela.com", http.StatusNoContent, "https://wavehousela.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.expectedAllow {
				t.Errorf("expected allow origin %q, got %q", tt.expectedAllow, got)
			}
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger(zaptest.NewLogger(t)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "abc" {
		t.Errorf("expected propagated request id abc, got %s", got)
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Timeout(time.Second))

	var deadline time.Time
	var ok bool
	r.GET("/x", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(context.Background()))

	if !ok || time.Until(deadline) > time.Second {
		t.Errorf("expected deadline within 1s, got %v %v", deadline, ok)
	}
}
