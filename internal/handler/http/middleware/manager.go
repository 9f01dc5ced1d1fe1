package middleware

import (
	"net/http"

	"github.com/chamcong/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong/attendance-backend-go/internal/handler/http/response"
)

// ManagerOnly restricts record administration to admin/manager tokens.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := auth.RoleFromContext(r.Context())
		if role != auth.RoleAdmin && role != auth.RoleManager {
			response.HandleError(w, auth.ErrManagerRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
