package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/kronoshq/timekeeping-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeping-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendances", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Post("/", attendanceHandler.CreateManual)
			r.Get("/", attendanceHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Put("/", attendanceHandler.UpdateManual)
				r.Get("/tardiness", attendanceHandler.GetTardiness)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/", leaveHandler.Submit)
			r.Get("/", leaveHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", leaveHandler.Get)
				r.Post("/approve", leaveHandler.Approve)
				r.Post("/reject", leaveHandler.Reject)
				r.Delete("/", leaveHandler.Cancel)
				r.Get("/conflicts", leaveHandler.Conflicts)
			})
		})

		r.Get("/employees/{employeeID}/leave-balances", leaveHandler.Balances)

		r.Route("/overtime-requests", func(r chi.Router) {
			r.Post("/", overtimeHandler.Submit)
			r.Get("/", overtimeHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", overtimeHandler.Get)
				r.Post("/approve", overtimeHandler.Approve)
				r.Post("/reject", overtimeHandler.Reject)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly-summary", reportHandler.MonthlySummary)
			r.Get("/leave-utilization", reportHandler.LeaveUtilization)
			r.Get("/overtime-ranking", reportHandler.OvertimeRanking)
		})
	})

	return r
}
