package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/millynails/MN-BookingService/internal/api/handlers"
)

// BearerAuth guards a route with a shared secret. Requests must carry
// "Authorization: Bearer <secret>" or they are rejected with 401.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if len(got) != len(expected) || subtle.ConstantTimeCompare(got, expected) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "não autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
