package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)
		if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.RoutePattern() != "" {
			spanName = fmt.Sprintf("%s %s", request.Method, rctx.RoutePattern())
		}

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		rec := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(rec, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": rec.status,
		})
	})
}

const (
	cacheKeyRateLimit = "limiter"
)

func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request))

		var count int
		err := a.cache.Get(ctx, cacheKey, &count)

		if err != nil {
			if errors.Is(err, cache.Nil) {
				count = 1
			} else {
				next.ServeHTTP(writer, request)

				return
			}
		} else {
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(writer)

			return
		}

		if err = a.cache.Save(ctx, cacheKey, count, windowSecs); err != nil {
			next.ServeHTTP(writer, request)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func clientIP(request *http.Request) string {
	if forwarded := request.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		return forwarded
	}

	if realIP := request.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}
