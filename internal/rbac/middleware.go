package rbac

import (
	"log/slog"
	"net/http"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

// Middleware wires the authorization gate into chi routes. The gate
// returns data; the middleware owns the reason-to-status mapping:
// unauthenticated -> 401, forbidden -> 403, store failure -> 500.
type Middleware struct {
	Gate   *Gate
	Logger *slog.Logger
}

// Require ensures the current user holds the named permission.
func (m Middleware) Require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := m.Gate.Authorize(r.Context(), permission)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("authorize", slog.String("permission", permission), slog.Any("error", err))
				}
				httpx.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !decision.Allowed {
				respondDenied(w, decision)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthenticated admits any active signed-in user without checking
// a specific permission.
func (m Middleware) RequireAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := m.Gate.Authorize(r.Context(), "")
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("authorize authenticated", slog.Any("error", err))
				}
				httpx.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if decision.Reason == ReasonUnauthenticated {
				respondDenied(w, decision)
				return
			}
			if decision.Identity == nil || !decision.Identity.IsActive {
				httpx.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperuser restricts a route to accounts with the superuser flag.
func (m Middleware) RequireSuperuser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := m.Gate.Authorize(r.Context(), "")
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("authorize superuser", slog.Any("error", err))
				}
				httpx.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if decision.Reason == ReasonUnauthenticated {
				respondDenied(w, decision)
				return
			}
			if decision.Identity == nil || !decision.Identity.IsCEO {
				httpx.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func respondDenied(w http.ResponseWriter, decision Decision) {
	switch decision.Reason {
	case ReasonUnauthenticated:
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, please sign in")
	default:
		httpx.Error(w, http.StatusForbidden, "access denied")
	}
}
