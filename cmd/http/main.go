package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-service/internal/app/config"
	"portal-service/internal/app/delivery/http/middlewares"
	"portal-service/internal/app/delivery/http/routers"
	"portal-service/internal/app/drivers/database"
	"portal-service/internal/app/drivers/logger"
	"portal-service/internal/app/services/auth"
	"portal-service/internal/app/services/fhir"
	"portal-service/internal/app/services/records"
	"portal-service/internal/app/services/shared/sessions"
	"portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	var redisClient *redis.Client
	if internalConfig.Sessions.Backend == constvars.SessionBackendRedis {
		redisClient = database.NewRedisClient(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	sessionTTL := time.Duration(bootstrap.InternalConfig.Sessions.TTLInMinutes) * time.Minute

	var sessionRepository = sessions.NewMemorySessionRepository(sessionTTL)
	if bootstrap.InternalConfig.Sessions.Backend == constvars.SessionBackendRedis {
		sessionRepository = sessions.NewRedisSessionRepository(bootstrap.Redis, sessionTTL)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// FHIR
	fhirClient := fhir.NewFHIRClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Records
	recordUsecase := records.NewRecordUsecase(sessionRepository, fhirClient, bootstrap.InternalConfig, bootstrap.Logger)
	recordController := records.NewRecordController(bootstrap.Logger, recordUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, recordController)
}
