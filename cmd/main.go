package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ICE-TOOLS/icefit/config"
	"github.com/ICE-TOOLS/icefit/routes"
	"github.com/ICE-TOOLS/icefit/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	secret := []byte(cfg.JWTSecret)
	userSvc := services.NewUserService(db, logger)
	tokenCache := services.NewTokenCache(rdb)
	authSvc := services.NewAuthService(secret, tokenCache, userSvc, logger)
	geminiSvc := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, logger)
	planSvc := services.NewMealPlanService(db, geminiSvc, logger)

	r := routes.SetupRouter(routes.Deps{
		DB:        db,
		Log:       logger,
		JWTSecret: secret,
		Users:     userSvc,
		Auth:      authSvc,
		Plans:     planSvc,
	})

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
