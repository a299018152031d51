package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leoatienza/portfolio-backend/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, portfolio Portfolio, store HealthChecker) (Server, error) {
	port := config.GetString(c, "PORT", "3000")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(portfolio, store,
		withConfig(c),
		withStartupTime(startupTime),
	)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	recentLimit     int
	rateLimit       int
	trustProxy      bool
	acceptedOrigins []string
	contacts        Contacts
	startupTime     time.Time
	assetVersion    string
}

// withConfig reads the router settings from the environment map
func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.recentLimit = config.GetInt(c, "RECENT_PROJECTS_LIMIT", r.recentLimit)
		r.rateLimit = config.GetInt(c, "RATE_LIMIT_PER_MINUTE", r.rateLimit)
		r.trustProxy = config.GetBool(c, "TRUST_PROXY", r.trustProxy)
		r.acceptedOrigins = config.GetList(c, "ACCEPTED_ORIGINS")
		r.assetVersion = config.GetString(c, "ASSET_VERSION", r.assetVersion)
		r.contacts = Contacts{
			Email:    config.GetString(c, "CONTACT_EMAIL", "leooatienza@gmail.com"),
			LinkedIn: optionalString(config.GetString(c, "LINKEDIN_URL", "")),
			GitHub:   optionalString(config.GetString(c, "GITHUB_URL", "")),
		}
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newRouter(portfolio Portfolio, store HealthChecker, opts ...func(*router)) *chi.Mux {
	router := defaultRouter()
	for _, opt := range opts {
		opt(&router)
	}
	if router.assetVersion == "" {
		// stable for the life of the process, so caches bust once per deploy
		router.assetVersion = strconv.FormatInt(router.startupTime.UnixMilli(), 10)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(clientIPMiddleware(router.trustProxy))
	chiRouter.Use(requestIDMiddleware)
	chiRouter.Use(assetVersionMiddleware(router.assetVersion))
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(securityHeadersMiddleware)
	if len(router.acceptedOrigins) > 0 {
		chiRouter.Use(corsMiddleware(router.acceptedOrigins))
	}
	chiRouter.Use(rateLimitMiddleware(router.rateLimit))

	handlers := initializeHandlers(portfolio, store, router)
	setupPageRoutes(chiRouter, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
