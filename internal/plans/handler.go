package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ngrujic/fittrack/internal/middleware"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"
	"github.com/ngrujic/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type plansRepo interface {
	List(ctx context.Context) ([]Plan, error)
	Details(ctx context.Context, planID int) (*PlanDetails, error)
	Apply(ctx context.Context, userID, planID int, startDate time.Time) (*ApplyPlanResult, error)
}

type ListPlansResponse struct {
	Plans []Plan `json:"plans"`
	Total int    `json:"total"`
}

type ApplyPlanRequest struct {
	PlanID    int    `json:"planId"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
}

type Handler struct {
	repo plansRepo
}

func NewHandler(repo plansRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	plansList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list plans: %s", err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListPlansResponse{
		Plans: plansList,
		Total: len(plansList),
	})
	if err != nil {
		log.Errorf("failed to marshal plans list: %s", err)
		http.Error(w, "failed to marshal plans list", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.details")
	defer span.End()

	planID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	details, err := handler.repo.Details(ctx, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan %d details: %s", planID, err)
		http.Error(w, "failed to get plan details", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal plan details: %s", err)
		http.Error(w, "failed to marshal plan details", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.apply")
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

	var applyReq ApplyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		log.Tracef("apply plan, unmarshal json params: %s", err)
		http.Error(w, "apply plan failed", http.StatusBadRequest)
		return
	}

	if applyReq.PlanID <= 0 {
		http.Error(w, "error, plan id empty", http.StatusBadRequest)
		return
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	if applyReq.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", applyReq.StartDate)
		if err != nil {
			http.Error(w, "error, invalid start date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		startDate = parsed
	}

	result, err := handler.repo.Apply(ctx, userID, applyReq.PlanID, startDate)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to apply plan %d for user %d: %s", applyReq.PlanID, userID, err)
		http.Error(w, "failed to apply plan", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal apply plan result: %s", err)
		http.Error(w, "failed to marshal apply plan result", http.StatusInternalServerError)
		return
	}

	log.Debugf("plan %d applied for user %d, %d sessions scheduled", applyReq.PlanID, userID, len(result.SessionIDs))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}
