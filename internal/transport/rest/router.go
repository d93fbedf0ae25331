package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tvintergoller/keep-informed/internal/activity"
	"github.com/tvintergoller/keep-informed/internal/auth"
	"github.com/tvintergoller/keep-informed/internal/chat"
	"github.com/tvintergoller/keep-informed/internal/employee"
	"github.com/tvintergoller/keep-informed/internal/event"
	"github.com/tvintergoller/keep-informed/internal/news"
	"github.com/tvintergoller/keep-informed/internal/task"
	"github.com/tvintergoller/keep-informed/internal/transport/middleware"
	"github.com/tvintergoller/keep-informed/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type Handlers struct {
	Auth     *auth.Handler
	Employee *employee.Handler
	Event    *event.Handler
	News     *news.Handler
	Task     *task.Handler
	Chat     *chat.Handler
	Activity *activity.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.ActingUser)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", handlers.Auth.Register)
			ar.Post("/login", handlers.Auth.Login)
		})

		r.Get("/users", handlers.Auth.ListUsers)
		r.Get("/users/{id}", handlers.Auth.GetUser)

		r.Route("/employees", func(er chi.Router) {
			er.Post("/", handlers.Employee.CreateEmployee)
			er.Get("/", handlers.Employee.ListEmployees)
		})

		r.Route("/events", func(er chi.Router) {
			er.Post("/", handlers.Event.CreateEvent)
			er.Get("/", handlers.Event.ListEvents)
		})

		r.Route("/news", func(nr chi.Router) {
			nr.Post("/", handlers.News.CreateNews)
			nr.Get("/", handlers.News.ListNews)
			nr.Delete("/{id}", handlers.News.DeleteNews)
		})

		r.Route("/tasks", func(tr chi.Router) {
			tr.Post("/", handlers.Task.CreateTask)
			tr.Get("/", handlers.Task.ListTasks)
			tr.Delete("/{id}", handlers.Task.DeleteTask)
		})

		r.Route("/chat", func(cr chi.Router) {
			cr.Post("/messages", handlers.Chat.SendMessage)
			cr.Get("/between/{userA}/{userB}", handlers.Chat.GetConversation)
			cr.Get("/users/{id}/conversations", handlers.Chat.GetCorrespondents)
		})

		r.Route("/activity", func(ar chi.Router) {
			ar.Post("/", handlers.Activity.LogActivity)
			ar.Get("/report", handlers.Activity.ActivityReport)
		})
	})
}
