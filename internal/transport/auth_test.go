package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	handler := AuthMiddleware("token")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer token", http.StatusOK},
		{"wrong token", "Bearer other", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
		{"bare prefix", "Bearer ", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestCheckToken(t *testing.T) {
	require.NoError(t, CheckToken("abc", "abc"))
	require.ErrorIs(t, CheckToken("abd", "abc"), ErrUnauthorized)
	require.ErrorIs(t, CheckToken("", ""), ErrUnauthorized)
	require.Equal(t, "abc", BearerToken("Bearer abc"))
}
