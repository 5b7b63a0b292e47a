package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config, db *gorm.DB) (*Server, error) {
	gated, err := cfg.DefaultGated()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to load dependency policy: %w", err)
	}
	log.Printf("🔒 Gated columns: %s\n", gated)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	boardShareRepo := repository.NewBoardShareRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	labelRepo := repository.NewLabelRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, tokens)
	boardHandler := handler.NewBoardHandler(boardRepo, boardShareRepo)
	boardShareHandler := handler.NewBoardShareHandler(boardRepo, userRepo, boardShareRepo)
	columnHandler := handler.NewColumnHandler(columnRepo, boardRepo, boardShareRepo, gated)
	taskHandler := handler.NewTaskHandler(taskRepo, columnRepo, boardRepo, boardShareRepo, userRepo, labelRepo, gated)
	dependencyHandler := handler.NewDependencyHandler(taskRepo, boardRepo, boardShareRepo, userRepo, gated)
	labelHandler := handler.NewLabelHandler(labelRepo, boardRepo, boardShareRepo)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		authorized.GET("/me", userHandler.Me)

		// Board routes
		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.PUT("/boards/:id", boardHandler.Update)

		// Board sharing routes
		authorized.POST("/boards/:id/share", boardShareHandler.ShareBoard)
		authorized.DELETE("/boards/:id/share/:user_id", boardShareHandler.RemoveShare)
		authorized.GET("/boards/:id/share", boardShareHandler.GetBoardShares)
		authorized.GET("/shared-boards", boardShareHandler.GetSharedBoards)

		// Dependency views and policy
		authorized.GET("/boards/:id/tasks", dependencyHandler.BoardTasks)
		authorized.GET("/boards/:id/task-tree", dependencyHandler.TaskTree)
		authorized.GET("/boards/:id/gated-columns", dependencyHandler.GetGatedColumns)
		authorized.PUT("/boards/:id/gated-columns", dependencyHandler.UpdateGatedColumns)

		// Column routes
		authorized.POST("/columns", columnHandler.Create)
		authorized.GET("/boards/:id/columns", columnHandler.GetAll)
		authorized.GET("/columns/:id", columnHandler.GetByID)
		authorized.PUT("/columns/:id", columnHandler.Update)
		authorized.DELETE("/columns/:id", columnHandler.Delete)
		authorized.POST("/boards/:id/columns/reorder", columnHandler.ReorderColumns)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.GET("/columns/:id/tasks", taskHandler.GetByColumnID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.POST("/tasks/:id/move", taskHandler.MoveTask)
		authorized.GET("/tasks/:id/dependency-chain", taskHandler.DependencyChain)
		authorized.POST("/tasks/:id/assign", taskHandler.AssignUser)
		authorized.DELETE("/tasks/:id/assign", taskHandler.UnassignUser)
		authorized.POST("/tasks/:id/labels/:label_id", taskHandler.AddLabel)
		authorized.DELETE("/tasks/:id/labels/:label_id", taskHandler.RemoveLabel)
		authorized.GET("/tasks/:id/labels", taskHandler.GetTaskLabels)
		authorized.POST("/tasks/:id/due-date", taskHandler.SetDueDate)

		// Label routes
		authorized.POST("/labels", labelHandler.Create)
		authorized.GET("/labels/:id", labelHandler.GetByID)
		authorized.GET("/boards/:id/labels", labelHandler.GetByBoardID)
		authorized.PUT("/labels/:id", labelHandler.Update)
		authorized.DELETE("/labels/:id", labelHandler.Delete)
		authorized.GET("/labels/:id/tasks", labelHandler.GetTasksWithLabel)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// Run serves until SIGINT or SIGTERM, then drains requests for up to
// five seconds.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("❌ failed to listen: %w", err)
	case <-quit:
	}
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("❌ server forced to shutdown: %w", err)
	}

	log.Println("✅ Server exited properly")
	return nil
}
