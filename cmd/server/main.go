package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/httpserver"
	"taskboard/internal/repository"
	"taskboard/internal/service/auth"
	"taskboard/internal/service/directory"
	"taskboard/internal/service/task"
	"taskboard/internal/store"
	"taskboard/pkg/logger"
)

func main() {
	// .env is optional; the environment still overrides config.yaml
	_ = godotenv.Load()

	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	// Flat-file stores
	taskRepo := repository.NewTaskRepository(store.NewFile(cfg.Store.TasksFile))
	userRepo := repository.NewUserRepository(store.NewFile(cfg.Store.UsersFile))

	// Services
	authService := auth.NewService(userRepo, cfg.JWT.Secret)
	dirService := directory.NewService(userRepo)
	taskService := task.NewService(taskRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	assigneeHandler := handler.NewAssigneeHandler(dirService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)

	// Router
	router := httpserver.NewRouter(authHandler, assigneeHandler, taskHandler, log, cfg.JWT.Secret, cfg.CORS.Origin)

	log.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("cors_origin", cfg.CORS.Origin),
		zap.String("tasks_file", cfg.Store.TasksFile),
		zap.String("users_file", cfg.Store.UsersFile),
	)
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
