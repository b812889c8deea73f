package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/bayanihr/hr201-backend-go/internal/config"
	"github.com/bayanihr/hr201-backend-go/internal/handler/http/middleware"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	activityLogHandler ActivityLogHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr201-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequestMeta)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/code/{code}", employeeHandler.GetByCode)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)

					r.Route("/education", func(r chi.Router) {
						r.Get("/", employeeHandler.ListEducation)
						r.Post("/", employeeHandler.AddEducation)
						r.Put("/{recordID}", employeeHandler.UpdateEducation)
						r.Delete("/{recordID}", employeeHandler.DeleteEducation)
					})

					r.Route("/training", func(r chi.Router) {
						r.Get("/", employeeHandler.ListTraining)
						r.Post("/", employeeHandler.AddTraining)
						r.Put("/{recordID}", employeeHandler.UpdateTraining)
						r.Delete("/{recordID}", employeeHandler.DeleteTraining)
					})

					r.Route("/work-experience", func(r chi.Router) {
						r.Get("/", employeeHandler.ListWorkExperience)
						r.Post("/", employeeHandler.AddWorkExperience)
						r.Put("/{recordID}", employeeHandler.UpdateWorkExperience)
						r.Delete("/{recordID}", employeeHandler.DeleteWorkExperience)
					})
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Post("/", leaveHandler.CreateType)
					r.Get("/{id}", leaveHandler.GetType)
					r.Put("/{id}", leaveHandler.UpdateType)
					r.Delete("/{id}", leaveHandler.DeleteType)
				})

				r.Route("/policies", func(r chi.Router) {
					r.Get("/", leaveHandler.ListPolicies)
					r.Post("/", leaveHandler.CreatePolicy)
					r.Put("/{id}", leaveHandler.UpdatePolicy)
					r.Delete("/{id}", leaveHandler.DeletePolicy)
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/", leaveHandler.ListBalances)
					r.Post("/", leaveHandler.CreateBalance)
					r.Get("/{id}", leaveHandler.GetBalance)
					r.Post("/{id}/close", leaveHandler.CloseBalance)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", leaveHandler.ListHolidays)
					r.Post("/", leaveHandler.CreateHoliday)
					r.Put("/{id}", leaveHandler.UpdateHoliday)
					r.Delete("/{id}", leaveHandler.DeleteHoliday)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", leaveHandler.ListRequests)
					r.Post("/", leaveHandler.CreateRequest)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", leaveHandler.GetRequest)
						r.Put("/", leaveHandler.UpdateRequest)
						r.Post("/approve", leaveHandler.ApproveRequest)
						r.Post("/reject", leaveHandler.RejectRequest)
						r.Post("/cancel", leaveHandler.CancelRequest)
					})
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/provinces", func(r chi.Router) {
					r.Get("/", masterHandler.ListProvinces)
					r.Post("/", masterHandler.CreateProvince)
					r.Put("/{id}", masterHandler.UpdateProvince)
					r.Delete("/{id}", masterHandler.DeleteProvince)
				})

				r.Route("/barangays", func(r chi.Router) {
					r.Get("/", masterHandler.ListBarangays)
					r.Post("/", masterHandler.CreateBarangay)
					r.Put("/{id}", masterHandler.UpdateBarangay)
					r.Delete("/{id}", masterHandler.DeleteBarangay)
				})

				r.Route("/religions", func(r chi.Router) {
					r.Get("/", masterHandler.ListReligions)
					r.Post("/", masterHandler.CreateReligion)
					r.Put("/{id}", masterHandler.UpdateReligion)
					r.Delete("/{id}", masterHandler.DeleteReligion)
				})

				r.Route("/civil-statuses", func(r chi.Router) {
					r.Get("/", masterHandler.ListCivilStatuses)
					r.Post("/", masterHandler.CreateCivilStatus)
					r.Put("/{id}", masterHandler.UpdateCivilStatus)
					r.Delete("/{id}", masterHandler.DeleteCivilStatus)
				})

				r.Route("/job-titles", func(r chi.Router) {
					r.Get("/", masterHandler.ListJobTitles)
					r.Post("/", masterHandler.CreateJobTitle)
					r.Put("/{id}", masterHandler.UpdateJobTitle)
					r.Delete("/{id}", masterHandler.DeleteJobTitle)
				})
			})

			r.Get("/activity-logs", activityLogHandler.List)
		})
	})
	return r
}
