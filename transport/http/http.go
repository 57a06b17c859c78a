package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/infras/postgres"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"frontdesk/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "frontdesk/docs"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	DB     *postgres.Connection
	Router router.Router
	State  ServerState

	appMiddleware middleware.AppMiddleware
	auditService  auditService.Audit
	mux           *chi.Mux
	server        *http.Server
	sweepCancel   context.CancelFunc
}

func New(cfg *config.Config, db *postgres.Connection, r router.Router, appMiddleware middleware.AppMiddleware, auditSvc auditService.Audit) *HTTP {
	return &HTTP{
		Config:        cfg,
		DB:            db,
		Router:        r,
		appMiddleware: appMiddleware,
		auditService:  auditSvc,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	h.sweepCancel = sweepCancel

	go h.auditService.AutoSweep(sweepCtx)

	h.server = &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.appMiddleware.Tracing)
	h.mux.Use(h.appMiddleware.RateLimit)

	h.mux.Get("/health", h.HealthCheck)
	h.mux.Get("/swagger/*", httpSwagger.Handler())

	h.Router.SetupRoutes(h.mux)
}

// HealthCheck performs a health check on the server.
//
// @Summary Health Check
// @Description Perform a health check on the server and its database connections.
// @Tags service
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) HealthCheck(writer http.ResponseWriter, request *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	if err := h.DB.Read.PingContext(request.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed on read connection")
		response.WithUnhealthy(writer)

		return
	}

	if err := h.DB.Write.PingContext(request.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed on write connection")
		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.sweepCancel != nil {
		h.sweepCancel()
	}

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	if h.server != nil {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second,
		)
		defer cancel()

		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
		}
	} else {
		time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
