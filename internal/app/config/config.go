package config

import (
	"portal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8000"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendBaseUrl: utils.GetEnvString("APP_FRONTEND_BASE_URL", "http://localhost:8000"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		// Defaults target the Epic sandbox patient standalone launch.
		OAuth: OAuth{
			AuthUrl:     utils.GetEnvString("OAUTH_AUTH_URL", "https://fhir.epic.com/interconnect-fhir-oauth/oauth2/authorize"),
			TokenUrl:    utils.GetEnvString("OAUTH_TOKEN_URL", "https://fhir.epic.com/interconnect-fhir-oauth/oauth2/token"),
			ClientID:    utils.GetEnvString("OAUTH_CLIENT_ID", "990e5d51-e8c1-4d70-8033-45fcbeeeaa40"),
			RedirectUri: utils.GetEnvString("OAUTH_REDIRECT_URI", "http://localhost:8000/api/v1/auth/callback"),
			Scope:       utils.GetEnvString("OAUTH_SCOPE", "openid fhirUser patient/*.read launch/patient"),
		},
		FHIR: FHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", "https://fhir.epic.com/interconnect-fhir-oauth/api/FHIR/R4"),
			RequestTimeoutInSeconds: utils.GetEnvInt("FHIR_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxRequestsPerSecond:    utils.GetEnvInt("FHIR_MAX_REQUESTS_PER_SECOND", 10),
		},
		Sessions: Sessions{
			Backend:      utils.GetEnvString("SESSIONS_BACKEND", "memory"),
			TTLInMinutes: utils.GetEnvInt("SESSIONS_TTL_IN_MINUTES", 60),
		},
	}
}
