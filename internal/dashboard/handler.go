package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/weight"
	"github.com/2beens/fittrack/internal/workouts"

	log "github.com/sirupsen/logrus"
)

// Page is the home page view model. CurrentWeight and BMI are nil until a weight is recorded.
type Page struct {
	Profile       profile.Profile     `json:"profile"`
	CurrentWeight *float64            `json:"currentWeight"`
	BMI           *float64            `json:"bmi"`
	Logs          []workouts.LogEntry `json:"logs"`
}

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard

type profileGetter interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

type latestWeightGetter interface {
	Latest(ctx context.Context) (*weight.Entry, error)
}

type logLister interface {
	List(ctx context.Context, params workouts.ListParams) ([]workouts.LogEntry, error)
}

type Handler struct {
	profiles profileGetter
	weights  latestWeightGetter
	logs     logLister
	renderer *views.Renderer
	// fallback is shown when the stored profile cannot be read
	fallback profile.Profile
}

func NewHandler(
	profiles profileGetter,
	weights latestWeightGetter,
	logs logLister,
	renderer *views.Renderer,
	fallback profile.Profile,
) *Handler {
	return &Handler{
		profiles: profiles,
		weights:  weights,
		logs:     logs,
		renderer: renderer,
		fallback: fallback,
	}
}

func (handler *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.home")
	defer span.End()

	p, err := handler.profiles.Get(ctx)
	if err != nil {
		log.Errorf("home page, get profile, using configured one: %s", err)
		p = &handler.fallback
	}

	latest, err := handler.weights.Latest(ctx)
	if err != nil {
		log.Errorf("home page, get latest weight: %s", err)
		views.Error(w, err, "error loading home page")
		return
	}

	logs, err := handler.logs.List(ctx, workouts.ListParams{})
	if err != nil {
		log.Errorf("home page, list exercise log: %s", err)
		views.Error(w, err, "error loading home page")
		return
	}

	page := Page{
		Profile: *p,
		Logs:    logs,
	}
	if latest != nil {
		page.CurrentWeight = &latest.Weight
		page.BMI = fitness.BMIPtr(&latest.Weight, p.HeightCm)
	}

	handler.renderer.Render(w, r, views.PageIndex, page)
}
