package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	adminPath       = "/admin/database"
	adminFailedPath = "/admin/database?success=false"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog

type catalogRepo interface {
	AddMuscle(ctx context.Context, category, name string) (*Muscle, error)
	ListMuscles(ctx context.Context) ([]Muscle, error)
	UpdateMuscle(ctx context.Context, muscle Muscle) error
	DeleteMuscle(ctx context.Context, id int) error
	AddExercise(ctx context.Context, muscleID int, name string) (*LibraryExercise, error)
	ListExercises(ctx context.Context) ([]LibraryExercise, error)
	UpdateExercise(ctx context.Context, e LibraryExercise) error
	DeleteExercise(ctx context.Context, id int) error
}

// Handler serves the admin database pages and the inline "add" forms of the workout flow.
type Handler struct {
	repo     catalogRepo
	renderer *views.Renderer
}

func NewHandler(repo catalogRepo, renderer *views.Renderer) *Handler {
	return &Handler{
		repo:     repo,
		renderer: renderer,
	}
}

func (handler *Handler) HandleAdminPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin")
	defer span.End()

	page, err := handler.adminPage(ctx)
	if err != nil {
		log.Errorf("admin database page: %s", err)
		views.Error(w, err, "error loading admin page")
		return
	}
	page.Failed = r.URL.Query().Get("success") == "false"

	handler.renderer.Render(w, r, views.PageAdminDatabase, page)
}

func (handler *Handler) adminPage(ctx context.Context) (*AdminPage, error) {
	muscles, err := handler.repo.ListMuscles(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminPage{
		Muscles:   muscles,
		Exercises: exercises,
	}, nil
}

// renderAfterAdd shows the admin page with a success flag, the write itself has already happened.
func (handler *Handler) renderAfterAdd(w http.ResponseWriter, r *http.Request, muscleSuccess, exerciseSuccess bool) {
	page, err := handler.adminPage(r.Context())
	if err != nil {
		log.Errorf("admin database page after add: %s", err)
		views.Redirect(w, r, adminPath)
		return
	}
	page.MuscleSuccess = muscleSuccess
	page.ExerciseSuccess = exerciseSuccess
	handler.renderer.Render(w, r, views.PageAdminDatabase, page)
}

func (handler *Handler) HandleAdminAddMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.add_muscle")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("admin add muscle, parse form error: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	m, err := handler.repo.AddMuscle(ctx, r.Form.Get("category"), r.Form.Get("muscle_name"))
	if err != nil {
		log.Errorf("admin add muscle: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}
	log.Debugf("muscle added: %d %s/%s", m.ID, m.Category, m.Name)

	handler.renderAfterAdd(w, r, true, false)
}

func (handler *Handler) HandleAdminAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.add_exercise")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("admin add exercise, parse form error: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	muscleID, err := strconv.Atoi(r.Form.Get("muscle_id"))
	if err != nil {
		log.Debugf("admin add exercise, invalid muscle id [%s]", r.Form.Get("muscle_id"))
		views.Redirect(w, r, adminFailedPath)
		return
	}

	e, err := handler.repo.AddExercise(ctx, muscleID, r.Form.Get("exercise_name"))
	if err != nil {
		log.Errorf("admin add exercise: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}
	log.Debugf("library exercise added: %d %s", e.ID, e.Name)

	handler.renderAfterAdd(w, r, false, true)
}

func (handler *Handler) HandleAdminUpdateMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.update_muscle")
	defer span.End()

	id, err := idFromPath(r)
	if err != nil {
		views.Redirect(w, r, adminFailedPath)
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("admin update muscle, parse form error: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	if err := handler.repo.UpdateMuscle(ctx, Muscle{
		ID:       id,
		Category: r.Form.Get("category"),
		Name:     r.Form.Get("muscle_name"),
	}); err != nil {
		log.Errorf("admin update muscle %d: %s", id, err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	views.Redirect(w, r, adminPath)
}

func (handler *Handler) HandleAdminUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.update_exercise")
	defer span.End()

	id, err := idFromPath(r)
	if err != nil {
		views.Redirect(w, r, adminFailedPath)
		return
	}
	if err := r.ParseForm(); err != nil {
		log.Errorf("admin update exercise, parse form error: %s", err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	muscleID, err := strconv.Atoi(r.Form.Get("muscle_id"))
	if err != nil {
		views.Redirect(w, r, adminFailedPath)
		return
	}

	if err := handler.repo.UpdateExercise(ctx, LibraryExercise{
		ID:       id,
		MuscleID: muscleID,
		Name:     r.Form.Get("exercise_name"),
	}); err != nil {
		log.Errorf("admin update exercise %d: %s", id, err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	views.Redirect(w, r, adminPath)
}

func (handler *Handler) HandleAdminDeleteMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.delete_muscle")
	defer span.End()

	id, err := idFromPath(r)
	if err != nil {
		views.Redirect(w, r, adminPath)
		return
	}
	if err := handler.repo.DeleteMuscle(ctx, id); err != nil {
		log.Errorf("admin delete muscle %d: %s", id, err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	views.Redirect(w, r, adminPath)
}

func (handler *Handler) HandleAdminDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.admin.delete_exercise")
	defer span.End()

	id, err := idFromPath(r)
	if err != nil {
		views.Redirect(w, r, adminPath)
		return
	}
	if err := handler.repo.DeleteExercise(ctx, id); err != nil {
		log.Errorf("admin delete exercise %d: %s", id, err)
		views.Redirect(w, r, adminFailedPath)
		return
	}

	views.Redirect(w, r, adminPath)
}

// HandleAddCustomExercise adds a library entry from the exercise picker and sends the
// user back where they came from.
func (handler *Handler) HandleAddCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add_custom_exercise")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("add custom exercise, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	muscleID, err := strconv.Atoi(r.Form.Get("muscleId"))
	if err != nil {
		http.Error(w, "error, invalid muscle id", http.StatusBadRequest)
		return
	}

	if _, err := handler.repo.AddExercise(ctx, muscleID, r.Form.Get("exerciseName")); err != nil {
		log.Errorf("add custom exercise: %s", err)
		views.Error(w, err, "error, failed to add exercise")
		return
	}

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	views.Redirect(w, r, back)
}

func (handler *Handler) HandleAddMuscleForm(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, r, views.PageAddMuscle, AddMusclePage{
		Category: r.URL.Query().Get("category"),
	})
}

func (handler *Handler) HandleAddMuscle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add_muscle")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("add muscle, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	m, err := handler.repo.AddMuscle(ctx, r.Form.Get("category"), r.Form.Get("muscle"))
	if err != nil {
		log.Errorf("add muscle: %s", err)
		views.Error(w, err, "error, failed to add muscle")
		return
	}

	views.Redirect(w, r, "/workout/"+url.PathEscape(m.Category))
}

func idFromPath(r *http.Request) (int, error) {
	idStr := strings.TrimSpace(mux.Vars(r)["id"])
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Debugf("invalid id in path [%s]: %s", idStr, err)
		return 0, err
	}
	return id, nil
}
