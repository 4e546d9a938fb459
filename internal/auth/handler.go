package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ngrujic/fittrack/internal/middleware"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"
	"github.com/ngrujic/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	authService *Service
}

func NewHandler(authService *Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the auth endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin))
	authSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	creds, err := credentialsFromRequest(r)
	if err != nil {
		log.Errorf("register, read credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.Register(ctx, creds)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, "error, invalid username or password", http.StatusBadRequest)
		return
	case errors.Is(err, ErrUsernameTaken):
		http.Error(w, "error, username taken", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("register user: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new user registered: %s", user.Username)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"id": %d, "username": "%s"}`, user.ID, user.Username))
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	creds, err := credentialsFromRequest(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, creds, time.Now())
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
		log.Tracef("failed login attempt for user: %s", creds.Username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-FITTRACK-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Printf("logout for [%s] success", authToken)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func credentialsFromRequest(r *http.Request) (Credentials, error) {
	var creds Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return Credentials{}, fmt.Errorf("unmarshal json params: %w", err)
		}
		return creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return Credentials{}, fmt.Errorf("parse form: %w", err)
	}
	return Credentials{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}
