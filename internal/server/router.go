package server

import (
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/yungbote/aura-backend/internal/handlers"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/middleware"
)

type RouterConfig struct {
  Log              *logger.Logger
  ChatHandler      *handlers.ChatHandler
  JournalHandler   *handlers.JournalHandler
  StatsHandler     *handlers.StatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.New()
  router.Use(gin.Recovery())
  router.Use(otelgin.Middleware("aura-backend"))
  router.Use(middleware.RequestLogger(cfg.Log))
  router.Use(middleware.CORS())

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Chat
    if cfg.ChatHandler != nil {
      api.POST("/chat", cfg.ChatHandler.Chat)
      api.GET("/chat/history", cfg.ChatHandler.History)
    }
    // Journal
    if cfg.JournalHandler != nil {
      api.POST("/journal", cfg.JournalHandler.Create)
      api.GET("/journals", cfg.JournalHandler.List)
      api.DELETE("/journal/:id", cfg.JournalHandler.Delete)
    }
    // Stats
    if cfg.StatsHandler != nil {
      api.GET("/stats", cfg.StatsHandler.Overview)
      api.POST("/exercise/complete", cfg.StatsHandler.CompleteExercise)
    }
  }

  return router
}
