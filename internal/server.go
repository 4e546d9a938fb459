package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ngrujic/fittrack/internal/auth"
	"github.com/ngrujic/fittrack/internal/config"
	"github.com/ngrujic/fittrack/internal/db"
	"github.com/ngrujic/fittrack/internal/exercises"
	"github.com/ngrujic/fittrack/internal/middleware"
	"github.com/ngrujic/fittrack/internal/nutrition"
	"github.com/ngrujic/fittrack/internal/plans"
	"github.com/ngrujic/fittrack/internal/summary"
	"github.com/ngrujic/fittrack/internal/telemetry/metrics"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"
	"github.com/ngrujic/fittrack/internal/workouts"

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
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb, auth.NewUsersRepo(dbPool))
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService)
	authHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	nutritionHandler := nutrition.NewHandler(nutrition.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/foods", nutritionHandler.HandleAddFood).Methods("POST", "OPTIONS").Name("new-food")
	r.HandleFunc("/foods", nutritionHandler.HandleListFoods).Methods("GET", "OPTIONS").Name("list-foods")
	r.HandleFunc("/foods/log", nutritionHandler.HandleAddMealLog).Methods("POST", "OPTIONS").Name("new-meal-log")
	r.HandleFunc("/foods/log", nutritionHandler.HandleListMealLogs).Methods("GET", "OPTIONS").Name("list-meal-logs")
	r.HandleFunc("/foods/log/{id}", nutritionHandler.HandleUpdateMealLog).Methods("PUT", "OPTIONS").Name("update-meal-log")
	r.HandleFunc("/foods/log/{id}", nutritionHandler.HandleDeleteMealLog).Methods("DELETE", "OPTIONS").Name("delete-meal-log")

	workoutsHandler := workouts.NewHandler(workouts.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleAddSession).Methods("POST", "OPTIONS").Name("new-session")
	r.HandleFunc("/workouts", workoutsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/workouts/log", workoutsHandler.HandleAddLog).Methods("POST", "OPTIONS").Name("new-exercise-log")
	r.HandleFunc("/workouts/log/{id}", workoutsHandler.HandleDeleteLog).Methods("DELETE", "OPTIONS").Name("delete-exercise-log")
	r.HandleFunc("/workouts/details/{id}", workoutsHandler.HandleDeleteDetail).Methods("DELETE", "OPTIONS").Name("delete-session-detail")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/workouts/{id}/exercises", workoutsHandler.HandleAddDetails).Methods("POST", "OPTIONS").Name("new-session-details")
	r.HandleFunc("/workouts/{id}/details", workoutsHandler.HandleSessionDetails).Methods("GET", "OPTIONS").Name("get-session-details")
	r.HandleFunc("/workouts/{id}/logs", workoutsHandler.HandleSessionLogs).Methods("GET", "OPTIONS").Name("get-session-logs")
	r.HandleFunc("/workouts/{id}/complete", workoutsHandler.HandleCompleteSession).Methods("PUT", "OPTIONS").Name("complete-session")

	plansHandler := plans.NewHandler(plans.NewRepo(s.dbPool))
	r.HandleFunc("/plans", plansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans/apply", plansHandler.HandleApply).Methods("POST", "OPTIONS").Name("apply-plan")
	r.HandleFunc("/plans/{id}", plansHandler.HandleDetails).Methods("GET", "OPTIONS").Name("plan-details")

	summaryHandler := summary.NewHandler(
		summary.NewService(s.dbPool, summary.NewRepo(), s.metricsManager),
	)
	r.HandleFunc("/summary", summaryHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-summary")
	r.HandleFunc("/summary/generate", summaryHandler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-summary")

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET").Name("health")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.AuthMiddleware(s.loginChecker))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
