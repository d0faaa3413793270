package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/db"
	fittrackmcp "github.com/2beens/fittrack/internal/mcp"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/misc"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/weight"
	"github.com/2beens/fittrack/internal/workouts"
)

const (
	writeRateLimitKey      = "fittrack:writes"
	gracefulShutdownPeriod = 15 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	profile     profile.Profile
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	statsCache  *stats.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	configProfile, err := profile.FromConfig(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("profile from config: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Debugln("db schema migrated")
	}

	// the profile row is written once, later edits from /update-profile are kept
	if err := profile.NewRepo(dbPool).Seed(ctx, configProfile); err != nil {
		log.Errorf("seed profile: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Infoln("no redis host configured, write rate limiting disabled")
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	return &Server{
		config:      cfg,
		profile:     configProfile,
		dbPool:      dbPool,
		redisClient: rdb,
		statsCache:  stats.NewCache(cfg.StatsCacheSizeMB, cfg.StatsCacheTTLSeconds, metricsManager),
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	weightRepo := weight.NewRepo(s.dbPool)
	catalogRepo := catalog.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	profileService := profile.NewService(s.dbPool)
	statsService := stats.NewService(
		stats.NewRepo(s.dbPool),
		workoutsRepo,
		weightRepo,
		profileService,
		s.statsCache,
	)

	dashboardHandler := dashboard.NewHandler(profileService, weightRepo, workoutsRepo, renderer, s.profile)
	r.HandleFunc("/", dashboardHandler.HandleHome).Methods("GET").Name("home")

	profileHandler := profile.NewHandler(profileService, weightRepo, renderer, s.profile)
	r.HandleFunc("/profile", profileHandler.HandleProfile).Methods("GET").Name("profile")
	r.HandleFunc("/update-profile", profileHandler.HandleUpdate).Methods("POST").Name("update-profile")

	weightHandler := weight.NewHandler(weightRepo, renderer, s.metricsManager)
	r.HandleFunc("/weight", weightHandler.HandleForm).Methods("GET").Name("weight-form")
	r.HandleFunc("/weight", weightHandler.HandleSubmit).Methods("POST").Name("weight-submit")

	workoutsHandler := workouts.NewHandler(workoutsRepo, catalogRepo, renderer, s.metricsManager)
	r.HandleFunc("/workout/{category}", workoutsHandler.HandleChooseMuscle).Methods("GET").Name("choose-muscle")
	r.HandleFunc("/workout/{category}/{muscleId}", workoutsHandler.HandleChooseExercise).Methods("GET").Name("choose-exercise")
	r.HandleFunc("/log-exercise", workoutsHandler.HandleLogExercise).Methods("POST").Name("log-exercise")

	catalogHandler := catalog.NewHandler(catalogRepo, renderer)
	r.HandleFunc("/add-custom-exercise", catalogHandler.HandleAddCustomExercise).Methods("POST").Name("add-custom-exercise")
	r.HandleFunc("/add-muscle", catalogHandler.HandleAddMuscleForm).Methods("GET").Name("add-muscle-form")
	r.HandleFunc("/add-muscle", catalogHandler.HandleAddMuscle).Methods("POST").Name("add-muscle")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/database", catalogHandler.HandleAdminPage).Methods("GET").Name("admin-database")
	admin.HandleFunc("/add-muscle", catalogHandler.HandleAdminAddMuscle).Methods("POST").Name("admin-add-muscle")
	admin.HandleFunc("/add-exercise", catalogHandler.HandleAdminAddExercise).Methods("POST").Name("admin-add-exercise")
	admin.HandleFunc("/update-muscle/{id}", catalogHandler.HandleAdminUpdateMuscle).Methods("POST").Name("admin-update-muscle")
	admin.HandleFunc("/update-exercise/{id}", catalogHandler.HandleAdminUpdateExercise).Methods("POST").Name("admin-update-exercise")
	admin.HandleFunc("/delete-muscle/{id}", catalogHandler.HandleAdminDeleteMuscle).Methods("POST").Name("admin-delete-muscle")
	admin.HandleFunc("/delete-exercise/{id}", catalogHandler.HandleAdminDeleteExercise).Methods("POST").Name("admin-delete-exercise")

	statsHandler := stats.NewHandler(statsService, renderer)
	r.HandleFunc("/stats", statsHandler.HandleStats).Methods("GET").Name("stats")
	r.HandleFunc("/analytics", statsHandler.HandleAnalytics).Methods("GET").Name("analytics")

	var redisPinger interface {
		Ping(ctx context.Context) *redis.StatusCmd
	}
	if s.redisClient != nil {
		redisPinger = s.redisClient
	}
	miscHandler := misc.NewHandler(s.dbPool, redisPinger, s.versionInfo)
	miscHandler.SetupRoutes(r)

	if s.config.MCPEnabled {
		mcpServer := fittrackmcp.NewServer(statsService, s.versionInfo)
		r.PathPrefix("/mcp").Handler(fittrackmcp.NewHTTPHandler(mcpServer)).Name("mcp")
		log.Debugln("mcp server mounted at /mcp")
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	if s.redisClient != nil && s.config.WriteRateLimitPerMin > 0 {
		r.Use(middleware.RateLimitWrites(
			redis_rate.NewLimiter(s.redisClient),
			writeRateLimitKey,
			s.config.WriteRateLimitPerMin,
			s.metricsManager,
		))
	}
	r.Use(s.statsCache.InvalidateOnWrite())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) error {
	router, err := s.routerSetup()
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), gracefulShutdownPeriod)
	defer timeoutCancel()

	// stop taking requests first, the handlers still need the pool and redis
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
