package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		OAuth    OAuth
		FHIR     FHIR
		Sessions Sessions
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		EndpointPrefix  string
		FrontendBaseUrl string
		MaxRequests     int
		ShutdownTimeout int
	}

	// OAuth describes the provider's SMART-on-FHIR authorization server.
	OAuth struct {
		AuthUrl     string
		TokenUrl    string
		ClientID    string
		RedirectUri string
		Scope       string
	}

	FHIR struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
	}

	Sessions struct {
		Backend      string
		TTLInMinutes int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
