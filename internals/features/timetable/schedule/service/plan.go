// file: internals/features/timetable/schedule/service/plan.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	gridService "academia_backend/internals/features/timetable/grid/service"
	dto "academia_backend/internals/features/timetable/schedule/dto"
	helper "academia_backend/internals/helpers"
)

/* ===============================
   Reconcile planning (pure)
=================================*/

// DesiredKey identifies a binding inside one (section, shift): the block's
// weekday and start. The end is implied by the grid catalog.
type DesiredKey struct {
	Weekday int
	Start   gridModel.ClockMinute
}

type PlannedAdd struct {
	Key        DesiredKey
	Block      gridService.TimeBlock
	RoomID     *uuid.UUID
	TeacherIDs []uuid.UUID
}

// ReconcilePlan is the computed add/remove diff plus the warnings produced by
// conflict checking the additions. Nothing here has touched the database.
type ReconcilePlan struct {
	Adds      []PlannedAdd
	RemoveIDs []uuid.UUID
	Warnings  []dto.WarningItem
}

// BuildReconcilePlan diffs the desired key set against the section's current
// bindings and conflict-checks every addition against the period state.
// Accepted additions are fed back into the simulated state so keys inside one
// request also see each other (quota counting included).
func BuildReconcilePlan(
	shift gridService.Shift,
	sectionID uuid.UUID,
	quota *int,
	state []BlockView,
	current map[DesiredKey]uuid.UUID,
	desired []DesiredKey,
	roomID *uuid.UUID,
	teacherIDs []uuid.UUID,
) ReconcilePlan {
	plan := ReconcilePlan{Warnings: []dto.WarningItem{}}

	desiredSet := make(map[DesiredKey]struct{}, len(desired))
	for _, k := range desired {
		desiredSet[k] = struct{}{}
	}

	toAdd := make([]DesiredKey, 0, len(desiredSet))
	for k := range desiredSet {
		if _, ok := current[k]; !ok {
			toAdd = append(toAdd, k)
		}
	}
	sort.Slice(toAdd, func(i, j int) bool {
		if toAdd[i].Weekday != toAdd[j].Weekday {
			return toAdd[i].Weekday < toAdd[j].Weekday
		}
		return toAdd[i].Start < toAdd[j].Start
	})

	toRemove := make([]DesiredKey, 0)
	for k := range current {
		if _, ok := desiredSet[k]; !ok {
			toRemove = append(toRemove, k)
		}
	}
	sort.Slice(toRemove, func(i, j int) bool {
		if toRemove[i].Weekday != toRemove[j].Weekday {
			return toRemove[i].Weekday < toRemove[j].Weekday
		}
		return toRemove[i].Start < toRemove[j].Start
	})
	for _, k := range toRemove {
		plan.RemoveIDs = append(plan.RemoveIDs, current[k])
	}

	// Simulated state grows with each accepted addition.
	simState := make([]BlockView, len(state))
	copy(simState, state)

	for _, key := range toAdd {
		start := key.Start
		block, ok := gridService.BlockAt(shift, key.Weekday, key.Start)
		if !ok {
			plan.Warnings = append(plan.Warnings, dto.WarningItem{
				Kind:    helper.KindInvalidBlock,
				Weekday: key.Weekday,
				Start:   &start,
				Message: fmt.Sprintf("shift %s has no block at weekday %d %s", shift, key.Weekday, key.Start),
			})
			continue
		}

		cand := Candidate{
			SectionID: sectionID,
			Slot: SlotRef{
				Weekday: block.Weekday,
				Start:   block.Start,
				End:     block.End,
				IsBreak: block.IsBreak,
			},
			RoomID:     roomID,
			TeacherIDs: teacherIDs,
			IsCreation: true,
			Quota:      quota,
		}
		if conflict := CheckBinding(simState, cand); conflict != nil {
			plan.Warnings = append(plan.Warnings, dto.WarningItem{
				Kind:               conflict.Kind,
				Weekday:            key.Weekday,
				Start:              &start,
				TeacherID:          conflict.TeacherID,
				RoomID:             conflict.RoomID,
				ConflictingBlockID: conflict.ConflictingBlockID,
				Message:            conflict.Message,
			})
			continue
		}

		plan.Adds = append(plan.Adds, PlannedAdd{
			Key:        key,
			Block:      block,
			RoomID:     roomID,
			TeacherIDs: teacherIDs,
		})
		simState = append(simState, BlockView{
			SectionID:  sectionID,
			Slot:       cand.Slot,
			RoomID:     roomID,
			TeacherIDs: teacherIDs,
		})
	}

	return plan
}
