package profile

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/weight"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile

type profileService interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateRequest) error
}

type latestWeightGetter interface {
	Latest(ctx context.Context) (*weight.Entry, error)
}

type Handler struct {
	service  profileService
	weights  latestWeightGetter
	renderer *views.Renderer
	// fallback is shown when the stored profile cannot be read
	fallback Profile
	now      func() time.Time
}

func NewHandler(
	service profileService,
	weights latestWeightGetter,
	renderer *views.Renderer,
	fallback Profile,
) *Handler {
	return &Handler{
		service:  service,
		weights:  weights,
		renderer: renderer,
		fallback: fallback,
		now:      time.Now,
	}
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	today := handler.now()
	page := Page{
		Profile: handler.fallback,
		Today:   today.Format(config.DateLayout),
	}

	p, err := handler.service.Get(ctx)
	if err != nil {
		log.Errorf("profile page, get profile: %s", err)
		handler.renderer.Render(w, r, views.PageProfile, page)
		return
	}
	page.Profile = *p

	latest, err := handler.weights.Latest(ctx)
	if err != nil {
		log.Errorf("profile page, get latest weight: %s", err)
		handler.renderer.Render(w, r, views.PageProfile, page)
		return
	}

	age := fitness.Age(p.DateOfBirth, today)
	page.Age = &age
	if latest != nil {
		page.CurrentWeight = &latest.Weight
		page.BMI = fitness.BMIPtr(&latest.Weight, p.HeightCm)
		if page.BMI != nil {
			page.BMICategory = fitness.BMICategory(*page.BMI)
		}
	}

	handler.renderer.Render(w, r, views.PageProfile, page)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("update profile failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if h := strings.TrimSpace(r.Form.Get("height")); h != "" {
		height, err := strconv.ParseFloat(h, 64)
		if err != nil {
			http.Error(w, "error, invalid height", http.StatusBadRequest)
			return
		}
		req.HeightCm = &height
	}
	if wStr := strings.TrimSpace(r.Form.Get("weight")); wStr != "" {
		weightKg, err := strconv.ParseFloat(wStr, 64)
		if err != nil {
			http.Error(w, "error, invalid weight", http.StatusBadRequest)
			return
		}
		req.Weight = &weightKg
	}

	today := handler.now()
	req.Date = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d := strings.TrimSpace(r.Form.Get("date")); d != "" {
		date, err := time.Parse(config.DateLayout, d)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		req.Date = date
	}

	if err := handler.service.Update(ctx, req); err != nil {
		log.Errorf("update profile: %s", err)
		views.Error(w, err, "error, failed to update profile")
		return
	}

	views.Redirect(w, r, "/profile")
}
