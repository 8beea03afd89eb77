// file: internals/features/timetable/offerings/route/offerings_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	offeringsController "academia_backend/internals/features/timetable/offerings/controller"
)

// OfferingsRoutes: read-only combo feeds (public group).
func OfferingsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := offeringsController.NewOfferingsController(db)

	g := r.Group("/timetable")
	g.Get("/periods", ctl.ListPeriods)
	g.Get("/offerings", ctl.ListOfferings)
	g.Get("/sections", ctl.ListSections)
	g.Get("/sections/:id", ctl.GetSection)
}
