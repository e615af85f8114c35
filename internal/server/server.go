package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/farellandr/promptbox/config"
	"github.com/farellandr/promptbox/internal/handlers"
	"github.com/farellandr/promptbox/internal/middleware"
	"github.com/farellandr/promptbox/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Start opens the database, serves the API on cfg.Port and shuts down cleanly on
// SIGINT or SIGTERM.
func Start(cfg *config.Config, log *zap.Logger) error {
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	defer sqlDB.Close()

	gin.SetMode(cfg.GinMode)
	r := NewRouter(repository.NewStore(db, log), log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server started", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewRouter(store *repository.Store, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))

	setupRoutes(r, store)
	return r
}

func setupRoutes(r *gin.Engine, store *repository.Store) {
	r.GET("/healthz", handlers.Health)

	api := r.Group("")
	api.Use(middleware.StoreMiddleware(store))
	{
		categories := api.Group("/categories")
		{
			categories.GET("", handlers.ListCategories)
			categories.POST("", handlers.CreateCategory)
			categories.GET("/counts", handlers.ListCategoriesWithCounts)
			categories.GET("/by-name/:name", handlers.GetCategoryByName)
			categories.GET("/:id", handlers.GetCategory)
			categories.PUT("/:id", handlers.UpdateCategory)
			categories.DELETE("/:id", handlers.DeleteCategory)
		}

		prompts := api.Group("/prompts")
		{
			prompts.GET("", handlers.ListPromptsByCategory)
			prompts.POST("", handlers.CreatePrompt)
			prompts.GET("/all", handlers.ListAllPrompts)
			prompts.GET("/search", handlers.SearchPrompts)
			prompts.GET("/most-liked", handlers.MostLikedPrompts)
			prompts.GET("/top-rated", handlers.TopRatedPrompts)
			prompts.GET("/:id", handlers.GetPrompt)
			prompts.POST("/:id/like", handlers.LikePrompt)
			prompts.POST("/:id/dislike", handlers.DislikePrompt)
		}

		api.GET("/creators/top", handlers.TopCreators)
	}
}
