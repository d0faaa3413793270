package stats

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats

type statsService interface {
	Stats(ctx context.Context) (*Stats, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

type Handler struct {
	service  statsService
	renderer *views.Renderer
}

func NewHandler(service statsService, renderer *views.Renderer) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
	}
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.stats")
	defer span.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		log.Errorf("stats page: %s", err)
		views.Error(w, err, "error loading stats")
		return
	}

	handler.renderer.Render(w, r, views.PageStats, stats)
}

func (handler *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.analytics")
	defer span.End()

	analytics, err := handler.service.Analytics(ctx)
	if err != nil {
		log.Errorf("analytics page: %s", err)
		views.Error(w, err, "error loading analytics")
		return
	}

	handler.renderer.Render(w, r, views.PageAnalytics, analytics)
}
