package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=auth_middleware_mocks_test.go -package=middleware_test

type loginChecker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
	UserIDFromToken(ctx context.Context, token string) (int, error)
}

type contextKey string

const userIDCtxKey contextKey = "userID"

// UserIDFromContext returns the id of the logged-in user making the request.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int)
	return userID, ok
}

// ContextWithUserID is exported for handler tests.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// paths reachable without a session token
var allowedPaths = map[string]bool{
	"/":           true,
	"/health":     true,
	"/a/login":    true,
	"/a/register": true,
	"/a/logout":   true,
}

func AuthMiddleware(loginChecker loginChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if allowedPaths[r.URL.Path] || strings.HasPrefix(r.URL.Path, "/metrics") {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			authToken := r.Header.Get("X-FITTRACK-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			isLogged, err := loginChecker.IsLogged(ctx, authToken)
			if err != nil {
				log.Tracef("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			if !isLogged {
				log.Tracef("[invalid token] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			userID, err := loginChecker.UserIDFromToken(ctx, authToken)
			if err != nil {
				log.Tracef("[failed user lookup] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(ctx, userID)))
		})
	}
}
