package handlers

import (
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/bot"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	dispatcher *bot.Dispatcher,
	sender MessageSender,
) {
	r.GET("/health", getHealth)

	registerTelegramRoutes(r, dispatcher, sender)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group serving the dashboard reads
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerDashboardRoutes(v1, services.Identity, services.Summary, services.Catalog)
}
