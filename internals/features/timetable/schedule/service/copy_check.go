// file: internals/features/timetable/schedule/service/copy_check.go
package service

import (
	"github.com/google/uuid"

	dto "academia_backend/internals/features/timetable/schedule/dto"
	helper "academia_backend/internals/helpers"
)

// copyDecision is the outcome of conflict-checking one block copy for a
// parallel section.
type copyDecision struct {
	Skip       bool
	TeacherIDs []uuid.UUID
	Warnings   []dto.WarningItem
}

// decideBlockCopy conflict-checks a candidate copy of sourceBlockID. A teacher
// clash drops the teachers for that one block and retries (time+room survive);
// a room clash against the source block itself is tolerated, since parallel
// sections may share the source room. Any remaining conflict skips the block.
func decideBlockCopy(state []BlockView, cand Candidate, sourceBlockID uuid.UUID, keepInstructors bool) copyDecision {
	dec := copyDecision{TeacherIDs: cand.TeacherIDs}

	conflict := CheckBinding(state, cand)
	if conflict != nil && conflict.Kind == helper.KindInstructorOverlap && keepInstructors {
		start := cand.Slot.Start
		dec.Warnings = append(dec.Warnings, dto.WarningItem{
			Kind:               conflict.Kind,
			Weekday:            cand.Slot.Weekday,
			Start:              &start,
			TeacherID:          conflict.TeacherID,
			ConflictingBlockID: conflict.ConflictingBlockID,
			Message:            "teachers dropped on copy: " + conflict.Message,
		})
		dec.TeacherIDs = nil
		cand.TeacherIDs = nil
		conflict = CheckBinding(state, cand)
	}
	if conflict != nil && conflict.Kind == helper.KindRoomOverlap &&
		conflict.ConflictingBlockID != nil && *conflict.ConflictingBlockID == sourceBlockID {
		// The source block is only the first hit in state order; re-check with
		// it filtered out so a clash with a third block still surfaces.
		conflict = CheckBinding(withoutBlock(state, sourceBlockID), cand)
	}
	if conflict != nil {
		start := cand.Slot.Start
		dec.Warnings = append(dec.Warnings, dto.WarningItem{
			Kind:               conflict.Kind,
			Weekday:            cand.Slot.Weekday,
			Start:              &start,
			TeacherID:          conflict.TeacherID,
			RoomID:             conflict.RoomID,
			ConflictingBlockID: conflict.ConflictingBlockID,
			Message:            "block not copied: " + conflict.Message,
		})
		dec.Skip = true
	}
	return dec
}

func withoutBlock(state []BlockView, blockID uuid.UUID) []BlockView {
	out := make([]BlockView, 0, len(state))
	for i := range state {
		if state[i].BlockID != blockID {
			out = append(out, state[i])
		}
	}
	return out
}
