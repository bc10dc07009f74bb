package main

import (
  "context"
  "fmt"
  "math/rand"
  "os"
  "time"

  "github.com/yungbote/aura-backend/internal/clients/huggingface"
  rediscache "github.com/yungbote/aura-backend/internal/clients/redis"
  "github.com/yungbote/aura-backend/internal/db"
  "github.com/yungbote/aura-backend/internal/handlers"
  "github.com/yungbote/aura-backend/internal/logger"
  "github.com/yungbote/aura-backend/internal/nlp"
  "github.com/yungbote/aura-backend/internal/observability"
  "github.com/yungbote/aura-backend/internal/repos"
  "github.com/yungbote/aura-backend/internal/server"
  "github.com/yungbote/aura-backend/internal/services"
  "github.com/yungbote/aura-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Tracing
  shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "aura-backend",
    Environment: utils.GetEnv("DEPLOY_ENV", "development", log),
    Version:     utils.GetEnv("SERVICE_VERSION", "dev", log),
  })
  if shutdownTracing != nil {
    defer func() {
      ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = shutdownTracing(ctx)
    }()
  }

  // Database
  dbService, err := db.NewDatabaseService(log)
  if err != nil {
    log.Error("Database init failed", "error", err)
    os.Exit(1)
  }
  if err = dbService.AutoMigrateAll(); err != nil {
    log.Error("Auto migration failed", "error", err)
    os.Exit(1)
  }
  theDB := dbService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  journalRepo := repos.NewJournalRepo(theDB, log)
  chatMessageRepo := repos.NewChatMessageRepo(theDB, log)
  appStatsRepo := repos.NewAppStatsRepo(theDB, log)

  // Seed the stats singleton so the streak increments always have a row.
  if _, err := appStatsRepo.Get(context.Background(), nil); err != nil {
    log.Error("Failed to seed app stats", "error", err)
    os.Exit(1)
  }

  // Inference client (optional redis cache in front of classification)
  var cache rediscache.Cache
  redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
  if redisAddr != "" {
    cache, err = rediscache.NewCache(log, redisAddr)
    if err != nil {
      log.Warn("Redis cache unavailable, continuing without it", "error", err)
      cache = nil
    }
  }
  hfClient := huggingface.NewClient(log, cache)

  // Pipeline components
  sentimentClassifier := nlp.NewSentimentClassifier(log, hfClient)
  emotionClassifier := nlp.NewEmotionClassifier(log, hfClient)
  synthesizer := nlp.NewResponseSynthesizer(log, hfClient, rand.New(rand.NewSource(time.Now().UnixNano())))

  // Services
  log.Info("Setting up services from main...")
  chatService := services.NewChatService(log, chatMessageRepo, sentimentClassifier, emotionClassifier, synthesizer)
  journalService := services.NewJournalService(theDB, log, journalRepo, appStatsRepo, sentimentClassifier, emotionClassifier)
  statsService := services.NewStatsService(log, journalRepo, appStatsRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  chatHandler := handlers.NewChatHandler(log, chatService)
  journalHandler := handlers.NewJournalHandler(log, journalService)
  statsHandler := handlers.NewStatsHandler(log, statsService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    Log:            log,
    ChatHandler:    chatHandler,
    JournalHandler: journalHandler,
    StatsHandler:   statsHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
