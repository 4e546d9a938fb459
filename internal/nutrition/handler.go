package nutrition

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

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	foodsCacheKey    = "foods-list"
	foodsCacheExpire = 5 * 60 // seconds
)

//go:generate mockgen -source=$GOFILE -destination=nutrition_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	AddFood(ctx context.Context, food Food) (*Food, error)
	GetFood(ctx context.Context, id int) (*Food, error)
	ListFoods(ctx context.Context) ([]Food, error)
	AddMealLog(ctx context.Context, mealLog MealLog) (*MealLog, error)
	UpdateMealLog(ctx context.Context, userID, id int, amount float64, mealType string) error
	DeleteMealLog(ctx context.Context, userID, id int) error
	ListMealLogs(ctx context.Context, userID int, logDate *time.Time) ([]MealLog, error)
}

type ListFoodsResponse struct {
	Foods []Food `json:"foods"`
	Total int    `json:"total"`
}

type ListMealLogsResponse struct {
	MealLogs []MealLog `json:"mealLogs"`
	Total    int       `json:"total"`
}

type DeleteMealLogResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateMealLogRequest struct {
	Amount   float64 `json:"amount"`
	MealType string  `json:"mealType"`
}

type Handler struct {
	repo           nutritionRepo
	foodsCache     *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(repo nutritionRepo, metricsManager *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:           repo,
		foodsCache:     freecache.NewCache(10 * megabyte),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addFood")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var food Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		log.Tracef("new food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}

	if food.Name == "" {
		http.Error(w, "error, food name empty", http.StatusBadRequest)
		return
	}
	if food.Calories < 0 || food.Protein < 0 || food.Carbs < 0 || food.Fat < 0 {
		http.Error(w, "error, negative macros", http.StatusBadRequest)
		return
	}

	addedFood, err := handler.repo.AddFood(ctx, food)
	if err != nil {
		log.Errorf("failed to add new food [%s]: %s", food.Name, err)
		http.Error(w, "error, failed to add new food", http.StatusInternalServerError)
		return
	}

	// the foods list changed, drop the cached copy
	handler.foodsCache.Del([]byte(foodsCacheKey))

	addedFoodJson, err := json.Marshal(addedFood)
	if err != nil {
		log.Errorf("failed to marshal new food: %s", err)
		http.Error(w, "error, failed to add new food", http.StatusInternalServerError)
		return
	}

	log.Debugf("new food added: %s", addedFoodJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedFoodJson, http.StatusCreated)
}

func (handler *Handler) HandleListFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listFoods")
	defer span.End()

	if cachedFoodsBytes, err := handler.foodsCache.Get([]byte(foodsCacheKey)); err == nil {
		log.Tracef("foods list cache hit")
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cachedFoodsBytes, http.StatusOK)
		return
	}

	foods, err := handler.repo.ListFoods(ctx)
	if err != nil {
		log.Errorf("failed to list foods: %s", err)
		http.Error(w, "failed to list foods", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListFoodsResponse{
		Foods: foods,
		Total: len(foods),
	})
	if err != nil {
		log.Errorf("failed to marshal foods list: %s", err)
		http.Error(w, "failed to marshal foods list", http.StatusInternalServerError)
		return
	}

	if err := handler.foodsCache.Set([]byte(foodsCacheKey), listJson, foodsCacheExpire); err != nil {
		log.Errorf("failed to cache foods list: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleAddMealLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addMealLog")
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

	var mealLog MealLog
	if err := json.NewDecoder(r.Body).Decode(&mealLog); err != nil {
		log.Tracef("new meal log, unmarshal json params: %s", err)
		http.Error(w, "add meal log failed", http.StatusBadRequest)
		return
	}

	mealLog.UserID = userID
	if mealLog.FoodID <= 0 {
		http.Error(w, "error, food id empty", http.StatusBadRequest)
		return
	}
	if mealLog.Amount <= 0 {
		http.Error(w, "error, amount must be positive", http.StatusBadRequest)
		return
	}
	if mealLog.LogDate.IsZero() {
		mealLog.LogDate = time.Now().Truncate(24 * time.Hour)
	}

	// make sure the food exists before logging it
	if _, err := handler.repo.GetFood(ctx, mealLog.FoodID); err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food not found", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get food %d: %s", mealLog.FoodID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	addedMealLog, err := handler.repo.AddMealLog(ctx, mealLog)
	if err != nil {
		log.Errorf("failed to add meal log for user %d: %s", userID, err)
		http.Error(w, "error, failed to add meal log", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterMealLogs.Inc()

	addedMealLogJson, err := json.Marshal(addedMealLog)
	if err != nil {
		log.Errorf("failed to marshal meal log: %s", err)
		http.Error(w, "error, failed to add meal log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedMealLogJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMealLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateMealLog")
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

	var updateReq UpdateMealLogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Tracef("update meal log, unmarshal json params: %s", err)
		http.Error(w, "update meal log failed", http.StatusBadRequest)
		return
	}

	if updateReq.Amount <= 0 {
		http.Error(w, "error, amount must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateMealLog(ctx, userID, id, updateReq.Amount, updateReq.MealType); err != nil {
		if errors.Is(err, ErrMealLogNotFound) {
			http.Error(w, "meal log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update meal log %d: %s", id, err)
		http.Error(w, "meal log not updated", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updatedId": `+strconv.Itoa(id)+`}`)
}

func (handler *Handler) HandleDeleteMealLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteMealLog")
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

	if err := handler.repo.DeleteMealLog(ctx, userID, id); err != nil {
		if errors.Is(err, ErrMealLogNotFound) {
			http.Error(w, "meal log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete meal log %d: %s", id, err)
		http.Error(w, "meal log not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteMealLogResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleListMealLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listMealLogs")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var logDate *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		logDate = &parsed
	}

	mealLogs, err := handler.repo.ListMealLogs(ctx, userID, logDate)
	if err != nil {
		log.Errorf("failed to list meal logs for user %d: %s", userID, err)
		http.Error(w, "failed to list meal logs", http.StatusInternalServerError)
		return
	}

	listJson, err := json.Marshal(ListMealLogsResponse{
		MealLogs: mealLogs,
		Total:    len(mealLogs),
	})
	if err != nil {
		log.Errorf("failed to marshal meal logs: %s", err)
		http.Error(w, "failed to marshal meal logs", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}
