package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Monika-Dangar/real-estate-management/config"
	"github.com/Monika-Dangar/real-estate-management/logger"
	"github.com/Monika-Dangar/real-estate-management/metrics"
	"github.com/Monika-Dangar/real-estate-management/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if err := config.ConnectDB(cfg); err != nil {
		zap.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := config.EnsureIndexes(ctx); err != nil {
		zap.L().Fatal("failed to ensure indexes", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(logger.Middleware())
	e.Use(metrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	routes.RegisterRoutes(e, cfg)

	zap.L().Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
	)
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
