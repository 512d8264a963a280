package middleware

import (
	"net/http"

	"owner-admin/internal/data/repository"
	"owner-admin/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// LoginPath is where unauthenticated requests get redirected.
const LoginPath = "/users/login"

// SessionAuth resolves the identity behind the session cookie. The request
// always proceeds; requests without a valid session simply carry no identity.
// The user row is re-fetched on every request so a deleted user loses access
// immediately.
func SessionAuth(sessions repository.SessionRepository, users repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			token := cookie.Value

			// Find valid session
			session, err := sessions.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token))
				next.ServeHTTP(w, r)
				return
			}

			// Deserialize: session holds only the user id, fetch the row
			user, err := users.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Int64("user_id", session.UserID),
					zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				// id no longer resolves to a row, yield no identity
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth gates a route on a resolved identity. It wraps the GET form
// routes and the POST mutation routes alike.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				logger.Debug("Unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method))
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
