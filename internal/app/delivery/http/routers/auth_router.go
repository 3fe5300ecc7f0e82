package routers

import (
	"portal-service/internal/app/delivery/http/middlewares"
	"portal-service/internal/app/services/auth"
	"portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Get("/login", authController.Login)
	router.Get("/callback", authController.Callback)
	router.Get("/logout/{"+constvars.URLParamSessionID+"}", authController.Logout)
}
