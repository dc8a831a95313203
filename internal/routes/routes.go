package routes

import (
	"github.com/gin-gonic/gin"

	"craftfolio/internal/handlers"
)

// RegisterRoutes wires every HTTP route to its controller. Unmatched paths
// fall through to the 404 page.
func RegisterRoutes(
	r *gin.Engine,
	site *handlers.SiteHandler,
	admin *handlers.AdminHandler,
) {
	site.RegisterRoutes(r)
	admin.RegisterRoutes(r)
	r.NoRoute(handlers.NotFound)
}
