package auth

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Auth
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Auth, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)

		r.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)

			authed.Get("/me", handler.Me)
			authed.Post("/change-password", handler.ChangePassword)

			authed.With(handler.middleware.RequireRoles(constant.RoleAdministrator)).
				Post("/register", handler.Register)
		})
	})
}

// Register creates a new staff account.
// @Summary Register a new staff account
// @Description Create a new staff account with one of the desk roles. Restricted to administrators.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
// @Security BearerAuth
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithMessage(w, http.StatusCreated, "User registered successfully")
}

// Login authenticates a staff account and issues a token pair.
// @Summary Log in
// @Description Authenticate with email and password and receive an access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Login successful"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	login, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, login)
}

// RefreshToken exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[jwt.TokenPair] "Tokens refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	tokens, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tokens refreshed successfully")

	response.WithJSON(w, http.StatusOK, tokens)
}

// ChangePassword changes the password of the authenticated user.
// @Summary Change password
// @Description Change the password of the currently authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Password changed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// Me returns the profile of the authenticated user.
// @Summary Get current user
// @Description Retrieve the profile of the currently authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User profile"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	user, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}
