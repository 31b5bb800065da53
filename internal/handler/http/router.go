package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/hoursly/worklog-portal/internal/handler/http/middleware"
	"github.com/hoursly/worklog-portal/internal/pkg/metrics"
)

func NewRouter(
	env string,
	logLevel slog.Level,
	corsOrigin string,
	cookieName string,
	userFetcher middleware.UserFetcher,
	m *metrics.Metrics,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	worklogHandler WorklogHandler,
	apiProxy http.Handler,
	metricsHandler http.Handler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.Guard(cookieName, m))

	r.Handle("/metrics", metricsHandler)

	// Backend-bound traffic is forwarded as-is; the backend enforces auth
	// per request via the session cookie.
	r.Mount("/api", apiProxy)

	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	// App views require a resolved session
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionLoader(userFetcher, cookieName))

		r.Get("/dashboard", dashboardHandler.Overview)
		r.Get("/team", dashboardHandler.Team)
		r.Get("/employees/{id}", dashboardHandler.EmployeeDetail)

		r.Route("/worklogs", func(r chi.Router) {
			r.Get("/", worklogHandler.List)
			r.Post("/", worklogHandler.Create)
			r.Put("/{id}", worklogHandler.Update)
			r.Delete("/{id}", worklogHandler.Delete)
		})
	})

	return r
}
