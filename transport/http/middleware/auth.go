package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	RequireRoles(roles ...string) func(http.Handler) http.Handler
}

// authImpl implements the Auth interface
type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates JWT tokens
// Requires valid authentication for all requests
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		// Validate that required claims are not empty
		if claims.UserID == "" || claims.Email == "" {
			log.Error().Msg("JWT claims: missing user identity")

			err := failure.Unauthorized("Invalid token claims")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRoles restricts an endpoint to the given roles.
// Requires prior authentication via Auth middleware.
func (m *authImpl) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

			userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

			if len(roles) > 0 && !slices.Contains(roles, userRole) {
				err := failure.ForbiddenError

				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role":     userRole,
					"allowed_roles": roles,
					"reason":        "role_not_allowed",
				})
				scope.End()

				response.WithError(writer, err)

				return
			}

			scope.End()
			next.ServeHTTP(writer, request)
		})
	}
}
