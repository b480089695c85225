package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/quarrylabs/sitekeeper/internal/config"
	"github.com/quarrylabs/sitekeeper/internal/dashboard"
	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
	"github.com/quarrylabs/sitekeeper/internal/speech"
	"github.com/quarrylabs/sitekeeper/internal/sqlite"
	"github.com/quarrylabs/sitekeeper/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	// The store is opened once per process and owned here; every consumer
	// gets it injected. Open failure is fatal to this session's persistence.
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	projectRepo := sqlite.NewProjectRepository(db)
	workerRepo := sqlite.NewWorkerRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)

	projectSvc := project.NewService(projectRepo, logger)
	workerSvc := worker.NewService(workerRepo, logger)
	taskSvc := task.NewService(taskRepo, logger)
	attendanceSvc := attendance.NewService(attendanceRepo, logger)
	dashboardSvc := dashboard.NewService(projectRepo, workerRepo, taskRepo, attendanceRepo, logger)
	transcriber := speech.NewOpenAITranscriber(cfg.Speech.OpenAIAPIKey, cfg.Speech.Model)

	router := transport.NewRouter(transport.Services{
		Projects:    projectSvc,
		Workers:     workerSvc,
		Tasks:       taskSvc,
		Attendance:  attendanceSvc,
		Dashboard:   dashboardSvc,
		Transcriber: transcriber,
	}, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "db", cfg.DB.Path)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
