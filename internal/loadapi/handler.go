package loadapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/middleware"
	"github.com/2beens/hrload/internal/telemetry/metrics"
	"github.com/2beens/hrload/internal/telemetry/tracing"
	"github.com/2beens/hrload/internal/trimp"
	"github.com/2beens/hrload/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=loadapi_test

const (
	maxRangeDays     = 366
	maxOverrideBytes = 8 << 20
)

type LoadService interface {
	RecomputeDay(ctx context.Context, date time.Time) (engine.DayOutput, error)
	RecomputeRange(ctx context.Context, from, to time.Time) ([]engine.DayOutput, error)
	OverrideDay(ctx context.Context, date time.Time, series hrseries.Series) (engine.DayOutput, error)
	RecomputeActivity(ctx context.Context, activityID string) (engine.ActivityOutput, error)
	InvalidateActivity(ctx context.Context, activityID string) error
	SetHRParams(ctx context.Context, params trimp.Params) error
}

type Handler struct {
	service LoadService
}

func NewHandler(service LoadService) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	rangeAllowedPerMin int,
) {
	mainRouter.HandleFunc("/days/{date}/recompute", handler.HandleRecomputeDay).Methods("POST").Name("recompute-day")
	mainRouter.HandleFunc("/days/{date}/daily", handler.HandleOverrideDay).Methods("PUT").Name("override-day")
	mainRouter.HandleFunc("/activities/{id}/recompute", handler.HandleRecomputeActivity).Methods("POST").Name("recompute-activity")
	mainRouter.HandleFunc("/activities/{id}/load", handler.HandleInvalidateActivity).Methods("DELETE").Name("invalidate-activity")
	mainRouter.HandleFunc("/hr-params", handler.HandleSetHRParams).Methods("PUT").Name("set-hr-params")

	rangeSubrouter := mainRouter.PathPrefix("/range").Subrouter()
	rangeSubrouter.HandleFunc("/recompute", handler.HandleRecomputeRange).Methods("POST").Name("recompute-range")
	rangeSubrouter.Use(middleware.RateLimit(rateLimiter, "recompute-range", rangeAllowedPerMin, metricsManager))
}

func (handler *Handler) HandleRecomputeDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "loadHandler.recomputeDay")
	defer span.End()

	date, err := parseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	out, err := handler.service.RecomputeDay(ctx, date)
	if err != nil {
		log.Errorf("recompute day %s: %s", date.Format(time.DateOnly), err)
		writeServiceError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, newDayResponse(out))
}

func (handler *Handler) HandleRecomputeRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "loadHandler.recomputeRange")
	defer span.End()

	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from: "+err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to: "+err.Error(), http.StatusBadRequest)
		return
	}
	if to.Before(from) {
		http.Error(w, "error, to before from", http.StatusBadRequest)
		return
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > maxRangeDays {
		http.Error(w, fmt.Sprintf("error, range of %d days exceeds %d", days, maxRangeDays), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("from", from.Format(time.DateOnly)),
		attribute.String("to", to.Format(time.DateOnly)),
	)

	outputs, err := handler.service.RecomputeRange(ctx, from, to)
	if err != nil && len(outputs) == 0 {
		log.Errorf("recompute range %s..%s: %s", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
		writeServiceError(w, err)
		return
	}

	resp := rangeResponse{Days: make([]dayResponse, 0, len(outputs))}
	for _, out := range outputs {
		resp.Days = append(resp.Days, newDayResponse(out))
	}
	for _, e := range multierr.Errors(err) {
		resp.Errors = append(resp.Errors, e.Error())
	}

	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	pkg.WriteJSONResponse(w, status, resp)
}

func (handler *Handler) HandleOverrideDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "loadHandler.overrideDay")
	defer span.End()

	date, err := parseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var pairs [][2]*int64
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOverrideBytes)).Decode(&pairs); err != nil {
		http.Error(w, "error, invalid heart rate pairs", http.StatusBadRequest)
		return
	}

	out, err := handler.service.OverrideDay(ctx, date, hrseries.FromPairs(pairs))
	if err != nil {
		log.Errorf("override day %s: %s", date.Format(time.DateOnly), err)
		writeServiceError(w, err)
		return
	}

	log.Printf("day %s overridden with %d samples", date.Format(time.DateOnly), len(pairs))
	pkg.WriteJSONResponse(w, http.StatusOK, newDayResponse(out))
}

func (handler *Handler) HandleRecomputeActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "loadHandler.recomputeActivity")
	defer span.End()

	activityID := mux.Vars(r)["id"]
	if activityID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	out, err := handler.service.RecomputeActivity(ctx, activityID)
	if err != nil {
		log.Errorf("recompute activity %s: %s", activityID, err)
		writeServiceError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, newActivityResponse(out))
}

func (handler *Handler) HandleInvalidateActivity(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["id"]
	if activityID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.InvalidateActivity(r.Context(), activityID); err != nil {
		log.Errorf("invalidate activity %s: %s", activityID, err)
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleSetHRParams(w http.ResponseWriter, r *http.Request) {
	var params trimp.Params
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&params); err != nil {
		http.Error(w, "error, invalid heart rate parameters body", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetHRParams(r.Context(), params); err != nil {
		log.Errorf("set hr params: %s", err)
		writeServiceError(w, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, params)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("error, date empty")
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("error, invalid date [%s], expected YYYY-MM-DD", raw)
	}
	return date, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trimp.ErrInvalidParams):
		http.Error(w, "error, invalid heart rate parameters", http.StatusUnprocessableEntity)
	case errors.Is(err, loadstore.ErrNotFound):
		http.Error(w, "error, not found", http.StatusNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "error, request cancelled", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
