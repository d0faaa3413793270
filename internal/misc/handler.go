package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const pingTimeout = 2 * time.Second

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Handler struct {
	db          dbPinger
	redis       redisPinger
	versionInfo string
}

type healthStatus struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Checks   map[string]string `json:"checks"`
	Duration string            `json:"duration"`
}

// NewHandler creates the health handler. redisClient is optional, leave it nil when the
// service runs without redis.
func NewHandler(db dbPinger, redisClient redisPinger, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redis:       redisClient,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/healthz", handler.handleHealth).Methods("GET").Name("healthz")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	begin := time.Now()
	status := healthStatus{
		Status:  "ok",
		Version: handler.versionInfo,
		Checks:  map[string]string{},
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := handler.db.Ping(pingCtx); err != nil {
		log.Errorf("health: postgres ping: %s", err)
		status.Status = "degraded"
		status.Checks["postgres"] = err.Error()
	} else {
		status.Checks["postgres"] = "ok"
	}

	if handler.redis != nil {
		if err := handler.redis.Ping(pingCtx).Err(); err != nil {
			log.Errorf("health: redis ping: %s", err)
			status.Status = "degraded"
			status.Checks["redis"] = err.Error()
		} else {
			status.Checks["redis"] = "ok"
		}
	}

	status.Duration = time.Since(begin).String()
	span.SetAttributes(attribute.String("health.status", status.Status))

	statusCode := http.StatusOK
	if status.Status != "ok" {
		span.SetStatus(codes.Error, "unhealthy dependency")
		statusCode = http.StatusServiceUnavailable
	}

	body, err := json.Marshal(status)
	if err != nil {
		log.Errorf("marshal health status: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, body, statusCode)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
