package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/wagedesk/internal/domain/user"
	"github.com/cmlabs-hris/wagedesk/internal/handler/http/middleware"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(JWTService jwt.Service, wageHandler WageHandler, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagedesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/wages", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.With(middleware.RequireRole(user.RoleAdmin, user.RoleManager, user.RoleStaff)).
			Get("/templates", wageHandler.ListTemplates)

		r.With(middleware.RequireRole(user.RoleAdmin, user.RoleManager)).
			Post("/calculate-monthly", wageHandler.CalculateMonthly)

		r.Route("/{id}", func(r chi.Router) {
			r.With(middleware.RequireRole(user.RoleAdmin, user.RoleManager)).
				Post("/approve", wageHandler.Approve)

			// Slip routes are open to every authenticated role; the
			// service limits worker-role callers to their own slips.
			r.Get("/slip", wageHandler.Slip)
			r.Get("/slip.csv", wageHandler.SlipCSV)
			r.Get("/slip.pdf", wageHandler.SlipPDF)
		})
	})

	return r
}
