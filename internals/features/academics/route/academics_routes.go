// file: internals/features/academics/route/academics_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsController "academia_backend/internals/features/academics/controller"
)

// AcademicsRoutes: reference-data combos (public group).
func AcademicsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)

	g := r.Group("/academics")
	g.Get("/rooms", ctl.ListRooms)
	g.Get("/teachers", ctl.ListTeachers)
}
