// file: internals/features/timetable/grid/controller/grid_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/timetable/grid/dto"
	service "academia_backend/internals/features/timetable/grid/service"
	helper "academia_backend/internals/helpers"
)

type GridController struct {
	DB *gorm.DB
}

func NewGridController(db *gorm.DB) *GridController {
	return &GridController{DB: db}
}

/* ============================ GET /grid ============================ */
// Ordered blocks of one shift, breaks included, for the block picker.
func (ctl *GridController) GetGrid(c *fiber.Ctx) error {
	shift, err := service.ParseShift(c.Query("shift"))
	if err != nil {
		return helper.FromAppError(c, err)
	}

	blocks, err := service.BlocksForShift(shift)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"shift":  shift,
		"blocks": blocks,
	})
}

/* ============================ GET /grid/axes ============================ */
// Weekday header + Mon-Fri and Saturday tramo columns, the shape the grid
// screen renders directly.
func (ctl *GridController) GetAxes(c *fiber.Ctx) error {
	shift := service.ShiftManana
	if raw := c.Query("shift"); raw != "" {
		s, err := service.ParseShift(raw)
		if err != nil {
			return helper.FromAppError(c, err)
		}
		shift = s
	}

	lvShift := shift
	if lvShift == service.ShiftSabado {
		lvShift = service.ShiftManana
	}

	lvTpl, err := service.DayTemplate(lvShift)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	sabTpl, err := service.DayTemplate(service.ShiftSabado)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	resp := dto.GridAxesResponse{
		Dias: []int{1, 2, 3, 4, 5, 6},
		LV:   make([]dto.TramoItem, 0, len(lvTpl)),
		Sab:  make([]dto.TramoItem, 0, len(sabTpl)),
	}
	for _, b := range lvTpl {
		resp.LV = append(resp.LV, dto.TramoItem{Desde: b.Start, Hasta: b.End, Recreo: b.IsBreak})
	}
	for _, b := range sabTpl {
		resp.Sab = append(resp.Sab, dto.TramoItem{Desde: b.Start, Hasta: b.End, Recreo: b.IsBreak})
	}

	return helper.Success(c, "OK", resp)
}

/* ============================ GET /grid/slots ============================ */
// Slots already materialized for a shift (admin/debug view).
func (ctl *GridController) GetSlots(c *fiber.Ctx) error {
	shift, err := service.ParseShift(c.Query("shift"))
	if err != nil {
		return helper.FromAppError(c, err)
	}

	slots, err := service.NewSlotRegistry(ctl.DB).SlotsForShift(c.UserContext(), shift)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load slots")
	}
	return helper.Success(c, "OK", slots)
}
