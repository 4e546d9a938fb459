package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ngrujic/fittrack/internal/middleware"
	"github.com/ngrujic/fittrack/internal/telemetry/metrics"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"
	"github.com/ngrujic/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddSession(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	GetSession(ctx context.Context, userID, id int) (*WorkoutSession, error)
	ListSessions(ctx context.Context, userID int) ([]WorkoutSession, error)
	AddDetails(ctx context.Context, sessionID int, details []SessionDetail) ([]SessionDetail, error)
	SessionDetails(ctx context.Context, sessionID int) ([]SessionDetail, error)
	AddLog(ctx context.Context, exerciseLog ExerciseLog) (*ExerciseLog, error)
	SessionLogs(ctx context.Context, sessionID int) ([]ExerciseLog, error)
	CompleteSession(ctx context.Context, userID, id int) error
	DeleteSession(ctx context.Context, userID, id int) error
	DeleteDetail(ctx context.Context, id int) error
	DeleteLog(ctx context.Context, id int) error
}

type AddDetailsRequest struct {
	Exercises []SessionDetail `json:"exercises"`
}

type ListSessionsResponse struct {
	Sessions []WorkoutSession `json:"sessions"`
	Total    int              `json:"total"`
}

type SessionDetailsResponse struct {
	Details []SessionDetail `json:"details"`
	Total   int             `json:"total"`
}

type SessionLogsResponse struct {
	Logs  []ExerciseLog `json:"logs"`
	Total int           `json:"total"`
}

type DeletedResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newSession")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	session.UserID = userID
	session.Completed = false
	if session.Type == "" {
		http.Error(w, "error, session type empty", http.StatusBadRequest)
		return
	}
	if session.ScheduledDate.IsZero() {
		session.ScheduledDate = time.Now().Truncate(24 * time.Hour)
	}

	addedSession, err := handler.repo.AddSession(ctx, session)
	if err != nil {
		log.Errorf("failed to add workout session for user %d: %s", userID, err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	addedSessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout session added: %s", addedSessionJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSessionJson, http.StatusCreated)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listSessions")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.repo.ListSessions(ctx, userID)
	if err != nil {
		log.Errorf("failed to list workout sessions for user %d: %s", userID, err)
		http.Error(w, "failed to list workout sessions", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("failed to marshal workout sessions: %s", err)
		http.Error(w, "failed to marshal workout sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

// ownedSession checks the session exists and belongs to the requesting user.
func (handler *Handler) ownedSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (sessionID int, ok bool) {
	userID, logged := middleware.UserIDFromContext(ctx)
	if !logged {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}

	sessionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}

	if _, err := handler.repo.GetSession(ctx, userID, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return 0, false
		}
		log.Errorf("failed to get workout session %d: %s", sessionID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return 0, false
	}

	return sessionID, true
}

func (handler *Handler) HandleAddDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addDetails")
	defer span.End()

	sessionID, ok := handler.ownedSession(ctx, w, r)
	if !ok {
		return
	}

	var addReq AddDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("add session details, unmarshal json params: %s", err)
		http.Error(w, "add session details failed", http.StatusBadRequest)
		return
	}

	if len(addReq.Exercises) == 0 {
		http.Error(w, "error, no exercises given", http.StatusBadRequest)
		return
	}
	for _, detail := range addReq.Exercises {
		if detail.ExerciseID <= 0 {
			http.Error(w, "error, exercise id empty", http.StatusBadRequest)
			return
		}
	}

	added, err := handler.repo.AddDetails(ctx, sessionID, addReq.Exercises)
	if err != nil {
		log.Errorf("failed to add details to session %d: %s", sessionID, err)
		http.Error(w, "error, failed to add session details", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(SessionDetailsResponse{
		Details: added,
		Total:   len(added),
	})
	if err != nil {
		log.Errorf("failed to marshal session details: %s", err)
		http.Error(w, "error, failed to add session details", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleSessionDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessionDetails")
	defer span.End()

	sessionID, ok := handler.ownedSession(ctx, w, r)
	if !ok {
		return
	}

	details, err := handler.repo.SessionDetails(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to get details of session %d: %s", sessionID, err)
		http.Error(w, "failed to get session details", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(SessionDetailsResponse{
		Details: details,
		Total:   len(details),
	})
	if err != nil {
		log.Errorf("failed to marshal session details: %s", err)
		http.Error(w, "failed to marshal session details", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleSessionLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessionLogs")
	defer span.End()

	sessionID, ok := handler.ownedSession(ctx, w, r)
	if !ok {
		return
	}

	exerciseLogs, err := handler.repo.SessionLogs(ctx, sessionID)
	if err != nil {
		log.Errorf("failed to get logs of session %d: %s", sessionID, err)
		http.Error(w, "failed to get session logs", http.StatusInternalServerError)
		return
	}

	logsJson, err := json.Marshal(SessionLogsResponse{
		Logs:  exerciseLogs,
		Total: len(exerciseLogs),
	})
	if err != nil {
		log.Errorf("failed to marshal session logs: %s", err)
		http.Error(w, "failed to marshal session logs", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logsJson, http.StatusOK)
}

func (handler *Handler) HandleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addLog")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exerciseLog ExerciseLog
	if err := json.NewDecoder(r.Body).Decode(&exerciseLog); err != nil {
		log.Tracef("new exercise log, unmarshal json params: %s", err)
		http.Error(w, "add exercise log failed", http.StatusBadRequest)
		return
	}

	if exerciseLog.SessionID <= 0 || exerciseLog.ExerciseID <= 0 {
		http.Error(w, "error, session id or exercise id empty", http.StatusBadRequest)
		return
	}
	if exerciseLog.Sets < 0 || exerciseLog.Reps < 0 || exerciseLog.WeightKg < 0 || exerciseLog.DurationSeconds < 0 {
		http.Error(w, "error, negative performance values", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.GetSession(ctx, userID, exerciseLog.SessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", exerciseLog.SessionID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	addedLog, err := handler.repo.AddLog(ctx, exerciseLog)
	if err != nil {
		log.Errorf("failed to add exercise log to session %d: %s", exerciseLog.SessionID, err)
		http.Error(w, "error, failed to add exercise log", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterExerciseLogs.Inc()

	addedLogJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal exercise log: %s", err)
		http.Error(w, "error, failed to add exercise log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedLogJson, http.StatusCreated)
}

func (handler *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.completeSession")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.CompleteSession(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to complete session %d: %s", id, err)
		http.Error(w, "session not completed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"completedId": `+strconv.Itoa(id)+`}`)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSession")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSession(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session %d: %s", id, err)
		http.Error(w, "session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletedResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleDeleteDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteDetail")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteDetail(ctx, id); err != nil {
		if errors.Is(err, ErrDetailNotFound) {
			http.Error(w, "session detail not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session detail %d: %s", id, err)
		http.Error(w, "session detail not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletedResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteLog")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteLog(ctx, id); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "exercise log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise log %d: %s", id, err)
		http.Error(w, "exercise log not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeletedResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
