package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	_, token, err := ja.Encode(claims)
	require.NoError(t, err)
	return token
}

func protectedRouter(ja *jwtauth.JWTAuth, extra ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(ja))
	r.Use(AuthRequired)
	r.Use(extra...)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func get(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	r := protectedRouter(ja)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("non-access token", func(t *testing.T) {
		token := encodeToken(t, ja, map[string]interface{}{"type": "refresh"})
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
	})

	t.Run("access token", func(t *testing.T) {
		token := encodeToken(t, ja, map[string]interface{}{"type": "access"})
		assert.Equal(t, http.StatusOK, get(r, "Bearer "+token).Code)
	})
}

func TestManagerOnly(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	r := protectedRouter(ja, ManagerOnly)

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"manager", http.StatusOK},
		{"employee", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tc := range cases {
		claims := map[string]interface{}{"type": "access"}
		if tc.role != "" {
			claims["role"] = tc.role
		}
		token := encodeToken(t, ja, claims)
		assert.Equal(t, tc.want, get(r, "Bearer "+token).Code, "role %q", tc.role)
	}
}
