package weight

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight

type weightRepo interface {
	Upsert(ctx context.Context, date time.Time, weight float64) error
	Latest(ctx context.Context) (*Entry, error)
}

type Handler struct {
	repo     weightRepo
	renderer *views.Renderer
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(
	repo weightRepo,
	renderer *views.Renderer,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		renderer: renderer,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (handler *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.form")
	defer span.End()

	// the form works without it, a failing lookup is not worth an error page
	latest, err := handler.repo.Latest(ctx)
	if err != nil {
		log.Errorf("weight form, get latest weight: %s", err)
	}

	handler.renderer.Render(w, r, views.PageWeight, FormPage{
		Today:  handler.now().Format(config.DateLayout),
		Latest: latest,
	})
}

func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.submit")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("submit weight failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(config.DateLayout, strings.TrimSpace(r.Form.Get("date")))
	if err != nil {
		log.Debugf("submit weight, invalid date [%s]: %s", r.Form.Get("date"), err)
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(r.Form.Get("weight")), 64)
	if err != nil {
		log.Debugf("submit weight, invalid weight [%s]: %s", r.Form.Get("weight"), err)
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, date, weight); err != nil {
		log.Errorf("submit weight [%s, %v]: %s", date.Format(config.DateLayout), weight, err)
		views.Error(w, err, "error, failed to save weight")
		return
	}

	handler.metrics.CounterWeightEntries.Inc()
	log.Debugf("weight recorded: %s -> %v", date.Format(config.DateLayout), weight)

	views.Redirect(w, r, "/")
}
