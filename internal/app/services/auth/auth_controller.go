package auth

import (
	"errors"
	"net/http"

	"portal-service/internal/app/config"
	"portal-service/internal/app/contracts"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

// Login bounces the browser to the provider's authorization endpoint.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	redirectURL, err := ctrl.AuthUsecase.BeginLogin(r.Context())
	if err != nil {
		ctrl.redirectWithError(w, r, err)
		return
	}
	http.Redirect(w, r, redirectURL, constvars.StatusFound)
}

// Callback consumes the provider redirect. Failures bounce back to the
// frontend with a short error code; tokens never appear in the URL.
func (ctrl *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sessionID, err := ctrl.AuthUsecase.HandleCallback(
		r.Context(),
		query.Get(constvars.OAuthParamCode),
		query.Get(constvars.OAuthParamState),
		query.Get(constvars.OAuthParamError),
	)
	if err != nil {
		ctrl.redirectWithError(w, r, err)
		return
	}

	http.Redirect(w, r, ctrl.InternalConfig.App.FrontendBaseUrl+"/dashboard?session="+sessionID, constvars.StatusFound)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	if err := ctrl.AuthUsecase.Logout(r.Context(), sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) redirectWithError(w http.ResponseWriter, r *http.Request, err error) {
	errorCode := constvars.AuthErrorCodeLoginFailed

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if customErr.ErrorCode != "" {
			errorCode = customErr.ErrorCode
		}
		ctrl.Log.Warn(customErr.DevMessage,
			zap.String(constvars.LoggingOperationKey, "auth_redirect_error"),
			zap.String("error_code", errorCode),
		)
	} else {
		ctrl.Log.Error(err.Error())
	}

	http.Redirect(w, r, ctrl.InternalConfig.App.FrontendBaseUrl+"/?error="+errorCode, constvars.StatusFound)
}
