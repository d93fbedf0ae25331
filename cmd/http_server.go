package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tvintergoller/keep-informed/internal"
	"github.com/tvintergoller/keep-informed/internal/activity"
	activityPostgres "github.com/tvintergoller/keep-informed/internal/activity/postgres"
	"github.com/tvintergoller/keep-informed/internal/auth"
	authPostgres "github.com/tvintergoller/keep-informed/internal/auth/postgres"
	"github.com/tvintergoller/keep-informed/internal/chat"
	chatPostgres "github.com/tvintergoller/keep-informed/internal/chat/postgres"
	"github.com/tvintergoller/keep-informed/internal/employee"
	employeePostgres "github.com/tvintergoller/keep-informed/internal/employee/postgres"
	"github.com/tvintergoller/keep-informed/internal/event"
	eventPostgres "github.com/tvintergoller/keep-informed/internal/event/postgres"
	"github.com/tvintergoller/keep-informed/internal/news"
	newsPostgres "github.com/tvintergoller/keep-informed/internal/news/postgres"
	"github.com/tvintergoller/keep-informed/internal/task"
	taskPostgres "github.com/tvintergoller/keep-informed/internal/task/postgres"
	"github.com/tvintergoller/keep-informed/internal/transport/rest"
	"github.com/tvintergoller/keep-informed/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

// Dependencies are constructed once at startup and passed down explicitly;
// there is no package-level engine or session state.
type Dependencies struct {
	Config   *internal.Config
	DB       *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to access database pool: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	authService := auth.NewService(authPostgres.NewUserRepository(db), lg)
	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), lg)
	eventService := event.NewService(eventPostgres.NewEventRepository(db), lg)
	newsService := news.NewService(newsPostgres.NewNewsRepository(db), lg)
	taskService := task.NewService(taskPostgres.NewTaskRepository(db), lg)
	chatService := chat.NewService(chatPostgres.NewChatRepository(db), lg)
	activityService := activity.NewService(activityPostgres.NewActivityRepository(db), authService, lg)

	handlers := rest.Handlers{
		Auth:     auth.NewHandler(authService),
		Employee: employee.NewHandler(employeeService),
		Event:    event.NewHandler(eventService),
		News:     news.NewHandler(newsService),
		Task:     task.NewHandler(taskService),
		Chat:     chat.NewHandler(chatService),
		Activity: activity.NewHandler(activityService),
	}

	return &Dependencies{
		Config:   config,
		DB:       db,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		Logger:   lg,
	}, nil
}

// initDB opens the GORM connection pool and applies the pool limits from config
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormPostgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access db pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
