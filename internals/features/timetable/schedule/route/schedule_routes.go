// file: internals/features/timetable/schedule/route/schedule_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "academia_backend/internals/features/timetable/schedule/controller"
)

// ScheduleReadRoutes: grid/report reads + occupancy (public group).
func ScheduleReadRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewScheduleController(db, validator.New(validator.WithRequiredStructEnabled()))

	g := r.Group("/timetable")
	g.Get("/blocks", ctl.GetBlocks)
	g.Get("/occupancy", ctl.GetOccupancy)
}

// ScheduleAdminRoutes: the mutating calls (admin group, behind JWT).
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewScheduleController(db, validator.New(validator.WithRequiredStructEnabled()))

	g := r.Group("/timetable")
	g.Post("/reconcile", ctl.PostReconcile)
	g.Post("/parallel", ctl.PostOpenParallel)
}
