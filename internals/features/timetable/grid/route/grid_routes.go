// file: internals/features/timetable/grid/route/grid_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gridController "academia_backend/internals/features/timetable/grid/controller"
)

// GridRoutes: read-only grid catalog endpoints (public group).
func GridRoutes(r fiber.Router, db *gorm.DB) {
	ctl := gridController.NewGridController(db)

	grid := r.Group("/timetable")
	grid.Get("/grid", ctl.GetGrid)
	grid.Get("/grid/axes", ctl.GetAxes)
	grid.Get("/grid/slots", ctl.GetSlots)
}
