package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aquawash/api/internal/auth"
	"github.com/aquawash/api/internal/enum"
	"github.com/aquawash/api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const testSecret = "test-secret"

// newTestRouter mounts customer routes behind authentication and admin
// routes behind the admin role check, mirroring the production router.
func newTestRouter(register func(r chi.Router), registerAdmin func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(testSecret))
		if register != nil {
			register(r)
		}
		if registerAdmin != nil {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(enum.UserRoleAdmin))
				registerAdmin(r)
			})
		}
	})
	return r
}

// doRequest performs an authenticated request against the router and
// returns the recorded response.
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, userID uuid.UUID, role string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	token, err := auth.GenerateToken(testSecret, userID, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func makeNumeric(t *testing.T, val string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	if err := n.Scan(val); err != nil {
		t.Fatalf("scan numeric %q: %v", val, err)
	}
	return n
}

func numericEquals(n pgtype.Numeric, expected string) bool {
	var e pgtype.Numeric
	if err := e.Scan(expected); err != nil {
		return false
	}
	return numericToDecimal(n).Equal(numericToDecimal(e))
}
