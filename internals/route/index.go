// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "academia_backend/internals/features/academics/route"
	gridRoute "academia_backend/internals/features/timetable/grid/route"
	offeringsRoute "academia_backend/internals/features/timetable/offerings/route"
	scheduleRoute "academia_backend/internals/features/timetable/schedule/route"
	authMiddleware "academia_backend/internals/middlewares/auth"
	middlewares "academia_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// Read paths: grid catalog, combos, blocks, occupancy.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	gridRoute.GridRoutes(public, db)
	offeringsRoute.OfferingsRoutes(public, db)
	scheduleRoute.ScheduleReadRoutes(public, db)
	academicsRoute.AcademicsRoutes(public, db)

	// ===================== ADMIN =====================
	// Mutating calls: reconcile + open parallel, behind JWT + write limiter.
	log.Println("[INFO] Setting up ADMIN group (Auth)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middlewares.WriteRateLimiter(),
	)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
}
