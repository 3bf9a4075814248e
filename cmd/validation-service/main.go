package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"validation-service/internal/auth"
	"validation-service/internal/config"
	httphandler "validation-service/internal/http"
	"validation-service/internal/http/middleware"
	"validation-service/internal/logger"
	"validation-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment, cfg.Log.Level)

	validationService := service.NewValidationService(cfg.Validation.BatchMaxItems, appLogger)

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.AccessSecret != "" {
		authMiddleware = middleware.Auth(auth.NewParser(cfg.Auth.AccessSecret))
	} else {
		appLogger.Warn().Msg("JWT_ACCESS_SECRET is empty, /v1 routes are public")
	}

	handler := httphandler.NewHandler(validationService, appLogger)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.MaxBodyBytes, appLogger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting validation service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
