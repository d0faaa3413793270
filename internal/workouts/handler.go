package workouts

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const setSlots = 5

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

type exerciseLogger interface {
	Log(ctx context.Context, req LogRequest) (int, error)
}

type catalogReader interface {
	MusclesByCategory(ctx context.Context, category string) ([]catalog.Muscle, error)
	GetMuscle(ctx context.Context, id int) (*catalog.Muscle, error)
	ExercisesByMuscle(ctx context.Context, muscleID int) ([]catalog.LibraryExercise, error)
}

type Handler struct {
	logger   exerciseLogger
	catalog  catalogReader
	renderer *views.Renderer
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(
	logger exerciseLogger,
	catalog catalogReader,
	renderer *views.Renderer,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		logger:   logger,
		catalog:  catalog,
		renderer: renderer,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (handler *Handler) HandleChooseMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.choose_muscle")
	defer span.End()

	category := mux.Vars(r)["category"]
	muscles, err := handler.catalog.MusclesByCategory(ctx, category)
	if err != nil {
		log.Errorf("choose muscle [%s]: %s", category, err)
		views.Error(w, err, "error loading muscles")
		return
	}

	handler.renderer.Render(w, r, views.PageChooseMuscle, MusclePickerPage{
		Category: category,
		Muscles:  muscles,
	})
}

func (handler *Handler) HandleChooseExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.choose_exercise")
	defer span.End()

	vars := mux.Vars(r)
	category := vars["category"]
	muscleID, err := strconv.Atoi(vars["muscleId"])
	if err != nil {
		http.Error(w, "error, invalid muscle id", http.StatusBadRequest)
		return
	}

	muscleName := catalog.UnknownMuscle
	muscle, err := handler.catalog.GetMuscle(ctx, muscleID)
	switch {
	case err == nil:
		muscleName = muscle.Name
	case !errors.Is(err, catalog.ErrMuscleNotFound):
		log.Errorf("choose exercise, get muscle %d: %s", muscleID, err)
		views.Error(w, err, "error loading muscle")
		return
	}

	exercises, err := handler.catalog.ExercisesByMuscle(ctx, muscleID)
	if err != nil {
		log.Errorf("choose exercise, muscle %d: %s", muscleID, err)
		views.Error(w, err, "error loading exercises")
		return
	}

	slots := make([]int, setSlots)
	for i := range slots {
		slots[i] = i + 1
	}

	handler.renderer.Render(w, r, views.PageChooseExercise, ExercisePickerPage{
		Category:  category,
		MuscleID:  muscleID,
		Muscle:    muscleName,
		Exercises: exercises,
		Today:     handler.now().Format(config.DateLayout),
		SetSlots:  slots,
	})
}

func (handler *Handler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("log exercise failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	req, err := parseLogRequest(r)
	if err != nil {
		log.Debugf("log exercise, invalid request: %s", err)
		views.Error(w, err, "error, "+err.Error())
		return
	}

	n, err := handler.logger.Log(ctx, req)
	if err != nil {
		log.Errorf("log exercise [%s]: %s", req.Exercise, err)
		views.Error(w, err, "error, failed to log exercise")
		return
	}

	handler.metrics.CounterLoggedSets.Add(float64(n))
	log.Debugf("logged %d rows for [%s] on %s", n, req.Exercise, req.Date.Format(config.DateLayout))

	views.Redirect(w, r, "/")
}

func parseLogRequest(r *http.Request) (LogRequest, error) {
	date, err := time.Parse(config.DateLayout, strings.TrimSpace(r.Form.Get("date")))
	if err != nil {
		return LogRequest{}, ErrInvalidLog
	}

	req := LogRequest{
		Date:     date,
		Category: r.Form.Get("category"),
		Exercise: r.Form.Get("exercise"),
	}

	if m := strings.TrimSpace(r.Form.Get("muscle")); m != "" {
		muscleID, err := strconv.Atoi(m)
		if err != nil {
			return LogRequest{}, ErrInvalidLog
		}
		req.MuscleID = &muscleID
	}

	req.Sets, err = parseSets(r)
	if err != nil {
		return LogRequest{}, err
	}

	return req, nil
}

// parseSets reads either the scalar sets/reps/weight fields, or the repeated reps and
// weight fields (also sent as reps[] and weight[]) holding one value per set.
func parseSets(r *http.Request) (SetsSpec, error) {
	reps := slices.Concat(r.Form["reps"], r.Form["reps[]"])
	weights := slices.Concat(r.Form["weight"], r.Form["weight[]"])

	if s := strings.TrimSpace(r.Form.Get("sets")); s != "" {
		sets, err := strconv.Atoi(s)
		if err != nil || sets <= 0 || len(reps) != 1 || len(weights) > 1 {
			return SetsSpec{}, ErrInvalidSets
		}
		rep, err := strconv.Atoi(strings.TrimSpace(reps[0]))
		if err != nil {
			return SetsSpec{}, ErrInvalidSets
		}
		weight := 0.0
		if len(weights) == 1 {
			if weight, err = parseWeight(weights[0]); err != nil {
				return SetsSpec{}, ErrInvalidSets
			}
		}
		return ScalarSets(sets, rep, weight), nil
	}

	if len(reps) != len(weights) {
		return SetsSpec{}, ErrInvalidSets
	}

	spec := SetsSpec{}
	for i := range reps {
		repStr, weightStr := strings.TrimSpace(reps[i]), strings.TrimSpace(weights[i])
		// untouched slot of the form
		if repStr == "" && weightStr == "" {
			continue
		}
		rep, err := strconv.Atoi(repStr)
		if err != nil {
			return SetsSpec{}, ErrInvalidSets
		}
		weight, err := parseWeight(weightStr)
		if err != nil {
			return SetsSpec{}, ErrInvalidSets
		}
		spec.Reps = append(spec.Reps, rep)
		spec.Weights = append(spec.Weights, weight)
	}
	if len(spec.Reps) == 0 {
		return SetsSpec{}, ErrInvalidSets
	}

	return spec, nil
}

// parseWeight treats an empty weight as body weight only (0 kg).
func parseWeight(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
