// file: internals/seeds/runner.go
package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	gridService "academia_backend/internals/features/timetable/grid/service"
)

// RunAllSeeds materializes the static grid catalog into time_slots so the UI
// grid has rows before the first reconcile ever runs. Idempotent: Resolve is a
// get-or-create on the unique slot key.
func RunAllSeeds(db *gorm.DB) {
	ctx := context.Background()
	registry := gridService.NewSlotRegistry(db)

	shifts := []gridService.Shift{
		gridService.ShiftManana,
		gridService.ShiftTarde,
		gridService.ShiftVespertino,
		gridService.ShiftSabado,
	}

	total := 0
	for _, shift := range shifts {
		blocks, err := gridService.BlocksForShift(shift)
		if err != nil {
			log.Printf("[ERROR] seed shift %s: %v", shift, err)
			continue
		}
		for _, block := range blocks {
			if block.IsBreak {
				continue
			}
			if _, err := registry.Resolve(ctx, shift, block.Weekday, block.Start, block.End); err != nil {
				log.Printf("[ERROR] seed slot %s wd=%d %s: %v", shift, block.Weekday, block.Start, err)
				continue
			}
			total++
		}
	}
	log.Printf("[INFO] grid slots seeded (%d resolved)", total)
}
