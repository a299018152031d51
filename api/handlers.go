package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(portfolio Portfolio, store HealthChecker, router router) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(portfolio, router.recentLimit),
		pageHandler:    newPageHandler(router.contacts),
		healthHandler:  newHealthHandler(store, router.startupTime),
	}
}

func defaultRouter() router {
	return router{
		recentLimit:  6,
		rateLimit:    120,
		startupTime:  time.Now(),
		assetVersion: "",
	}
}
