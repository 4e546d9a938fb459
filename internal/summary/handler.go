package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngrujic/fittrack/internal/middleware"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"
	"github.com/ngrujic/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=summary_test

type summaryGenerator interface {
	Generate(ctx context.Context, userID int, periodType PeriodType, periodStart string) (*Response, error)
}

type GenerateRequest struct {
	PeriodType  string `json:"period_type"`
	PeriodStart string `json:"period_start"`
}

type Handler struct {
	service summaryGenerator
}

func NewHandler(service summaryGenerator) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGenerate generates the summary of the period given in the JSON body
// and upserts the rollup row.
func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.generate")
	defer span.End()

	var genReq GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&genReq); err != nil {
		log.Tracef("generate summary, unmarshal json params: %s", err)
		http.Error(w, "generate summary failed", http.StatusBadRequest)
		return
	}

	handler.generate(ctx, w, genReq)
}

// HandleGet reads the period from the query string and recomputes the summary
// fresh, exactly like HandleGenerate. The stored rollup is never read back,
// so charts always reflect the current logs.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.get")
	defer span.End()

	handler.generate(ctx, w, GenerateRequest{
		PeriodType:  r.URL.Query().Get("period_type"),
		PeriodStart: r.URL.Query().Get("period_start"),
	})
}

func (handler *Handler) generate(ctx context.Context, w http.ResponseWriter, genReq GenerateRequest) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if genReq.PeriodType == "" || genReq.PeriodStart == "" {
		http.Error(w, "error, period_type and period_start required", http.StatusBadRequest)
		return
	}

	resp, err := handler.service.Generate(ctx, userID, PeriodType(genReq.PeriodType), genReq.PeriodStart)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriodType) || errors.Is(err, ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf(
			"failed to generate %s summary for user %d, start %s: %s",
			genReq.PeriodType, userID, genReq.PeriodStart, err,
		)
		http.Error(w, "failed to generate summary", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal summary: %s", err)
		http.Error(w, "failed to marshal summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
