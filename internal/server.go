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
	"go.uber.org/multierr"

	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/auth"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/templates"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config           *config.Config
	dbPool           *pgxpool.Pool
	redisClient      *redis.Client
	loginRateLimiter middleware.RequestRateLimiter

	authService      *auth.Service
	authHandler      *auth.Handler
	sessionStore     *auth.SessionStore
	exercisesService *exercises.Service
	workoutsService  *workouts.Service
	templatesService *templates.Service
	analyticsService *analytics.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	JWTSecret               string
	GoogleClientID          string
	GoogleClientSecret      string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

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

	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittracker", "main", promRegistry)

	rdb := redis.NewClient(&redis.Options{
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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittracker-api", rdb)
	if err != nil {
		dbPool.Close()
		return nil, multierr.Append(err, rdb.Close())
	}

	tokenIssuer, err := auth.NewTokenIssuer(params.JWTSecret, cfg.TokenTTL.Duration)
	if err != nil {
		return nil, fmt.Errorf("new token issuer: %w", err)
	}
	googleProvider, err := auth.NewGoogleProvider(auth.GoogleConfig{
		ClientID:     params.GoogleClientID,
		ClientSecret: params.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("new google provider: %w", err)
	}

	sessionStore := auth.NewSessionStore(cfg.SessionTTL.Duration, rdb)
	authService := auth.NewService(
		auth.NewUsersRepo(dbPool),
		googleProvider,
		sessionStore,
		auth.NewStateStore(rdb),
		tokenIssuer,
	)
	authHandler := auth.NewHandler(authService, metricsManager, auth.HandlerParams{
		FrontendURL:   cfg.FrontendURL,
		SessionTTL:    cfg.SessionTTL.Duration,
		SecureCookies: cfg.SecureCookies,
	})

	exercisesService := exercises.NewService(
		exercises.NewRepo(dbPool),
		exercises.NewCatalogCache(cfg.ExerciseCacheSizeMB, cfg.ExerciseCacheTTL.Duration, metricsManager),
		metricsManager,
	)

	s := &Server{
		config:           cfg,
		dbPool:           dbPool,
		redisClient:      rdb,
		loginRateLimiter: redis_rate.NewLimiter(rdb),
		versionInfo:      params.VersionInfo,

		authService:      authService,
		authHandler:      authHandler,
		sessionStore:     sessionStore,
		exercisesService: exercisesService,
		workoutsService:  workouts.NewService(workouts.NewRepo(dbPool), exercisesService, metricsManager),
		templatesService: templates.NewService(templates.NewRepo(dbPool), exercisesService, metricsManager),
		analyticsService: analytics.NewService(analytics.NewRepo(dbPool)),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	go s.cleanupSessions(ctx)

	return s, nil
}

func (s *Server) cleanupSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionsCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debugln("sessions cleanup stopped")
			return
		case <-ticker.C:
			removed := s.sessionStore.ScanAndClean(ctx)
			s.metricsManager.CounterExpiredSessions.Add(float64(removed))
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"status":  "ok",
		"message": "Fitness Tracker API is running",
	}, http.StatusOK)
}

func (s *Server) handleAPIBanner(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"message": "Fitness Tracker API v1",
		"version": s.versionInfo,
	}, http.StatusOK)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittracker-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")
	r.HandleFunc("/api", s.handleAPIBanner).Methods("GET", "OPTIONS").Name("api-banner")

	// only the google sign-in endpoints are rate limited, /me is called on every page load
	loginRateLimit := middleware.RateLimit(
		s.loginRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.config.TrustProxyHeaders,
		s.metricsManager,
	)
	r.Handle("/api/auth/google", loginRateLimit(http.HandlerFunc(s.authHandler.HandleGoogleLogin))).Methods("GET", "OPTIONS").Name("google-login")
	r.Handle("/api/auth/google/callback", loginRateLimit(http.HandlerFunc(s.authHandler.HandleGoogleCallback))).Methods("GET", "OPTIONS").Name("google-callback")
	r.HandleFunc("/api/auth/me", s.authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/api/auth/logout", s.authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")

	exercisesHandler := exercises.NewHandler(s.exercisesService)
	r.HandleFunc("/api/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises", exercisesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/api/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/api/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	workoutsHandler := workouts.NewHandler(s.workoutsService)
	r.HandleFunc("/api/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts", workoutsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	templatesHandler := templates.NewHandler(s.templatesService)
	r.HandleFunc("/api/templates", templatesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/api/templates", templatesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-template")
	r.HandleFunc("/api/templates/{id}", templatesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-template")
	r.HandleFunc("/api/templates/{id}", templatesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-template")
	r.HandleFunc("/api/templates/{id}", templatesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")

	analyticsHandler := analytics.NewHandler(s.analyticsService)
	r.HandleFunc("/api/analytics/progress/{exerciseId}", analyticsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	r.HandleFunc("/api/analytics/personal-records", analyticsHandler.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("personal-records")
	r.HandleFunc("/api/analytics/workout-frequency", analyticsHandler.HandleWorkoutFrequency).Methods("GET", "OPTIONS").Name("workout-frequency")
	r.HandleFunc("/api/analytics/volume", analyticsHandler.HandleVolume).Methods("GET", "OPTIONS").Name("volume")
	r.HandleFunc("/api/analytics/summary", analyticsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("summary")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteErrorMessage(w, "Route not found", http.StatusNotFound)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authService)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", e)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConnections.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeOpenConnections.Add(-1)
	}
}
