package service

import (
	"testing"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	helper "academia_backend/internals/helpers"
)

func mkSlot(weekday int, start, end string) SlotRef {
	return SlotRef{
		Weekday: weekday,
		Start:   gridModel.MustClock(start),
		End:     gridModel.MustClock(end),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		a1, a2, b1, b2         string
		want                   bool
	}{
		{name: "identical", a1: "08:00", a2: "08:40", b1: "08:00", b2: "08:40", want: true},
		{name: "partial", a1: "08:00", a2: "08:45", b1: "08:30", b2: "09:00", want: true},
		{name: "contained", a1: "08:00", a2: "10:00", b1: "08:30", b2: "09:00", want: true},
		{name: "back to back", a1: "08:00", a2: "08:40", b1: "08:40", b2: "09:00", want: false},
		{name: "back to back reversed", a1: "08:40", a2: "09:00", b1: "08:00", b2: "08:40", want: false},
		{name: "disjoint", a1: "08:00", a2: "08:40", b1: "10:00", b2: "10:40", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				gridModel.MustClock(tt.a1), gridModel.MustClock(tt.a2),
				gridModel.MustClock(tt.b1), gridModel.MustClock(tt.b2),
			)
			if got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckBinding_BreakSlot(t *testing.T) {
	cand := Candidate{
		SectionID: uuid.New(),
		Slot:      SlotRef{Weekday: 1, Start: gridModel.MustClock("09:05"), End: gridModel.MustClock("09:15"), IsBreak: true},
	}
	conflict := CheckBinding(nil, cand)
	if conflict == nil || conflict.Kind != helper.KindInvalidBlock {
		t.Fatalf("conflict = %+v, want InvalidBlock", conflict)
	}
}

func TestCheckBinding_DuplicateBinding(t *testing.T) {
	section := uuid.New()
	existing := BlockView{
		BlockID:   uuid.New(),
		SectionID: section,
		Slot:      mkSlot(1, "08:25", "09:05"),
	}
	conflict := CheckBinding([]BlockView{existing}, Candidate{
		SectionID: section,
		Slot:      mkSlot(1, "08:25", "09:05"),
	})
	if conflict == nil || conflict.Kind != helper.KindDuplicateBinding {
		t.Fatalf("conflict = %+v, want DuplicateBinding", conflict)
	}
	if conflict.ConflictingBlockID == nil || *conflict.ConflictingBlockID != existing.BlockID {
		t.Errorf("conflicting block = %v, want %v", conflict.ConflictingBlockID, existing.BlockID)
	}
}

func TestCheckBinding_InstructorOverlap(t *testing.T) {
	teacher := uuid.New()
	busy := BlockView{
		BlockID:    uuid.New(),
		SectionID:  uuid.New(),
		Slot:       mkSlot(1, "08:25", "09:05"),
		TeacherIDs: []uuid.UUID{teacher},
	}

	tests := []struct {
		name       string
		slot       SlotRef
		teacherIDs []uuid.UUID
		wantKind   helper.ErrorKind
	}{
		{name: "same slot same teacher", slot: mkSlot(1, "08:25", "09:05"), teacherIDs: []uuid.UUID{teacher}, wantKind: helper.KindInstructorOverlap},
		{name: "overlapping interval", slot: mkSlot(1, "08:00", "08:45"), teacherIDs: []uuid.UUID{teacher}, wantKind: helper.KindInstructorOverlap},
		{name: "back to back is fine", slot: mkSlot(1, "09:05", "09:45"), teacherIDs: []uuid.UUID{teacher}},
		{name: "other weekday is fine", slot: mkSlot(2, "08:25", "09:05"), teacherIDs: []uuid.UUID{teacher}},
		{name: "other teacher is fine", slot: mkSlot(1, "08:25", "09:05"), teacherIDs: []uuid.UUID{uuid.New()}},
		{name: "no teachers is fine", slot: mkSlot(1, "08:25", "09:05")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := CheckBinding([]BlockView{busy}, Candidate{
				SectionID:  uuid.New(),
				Slot:       tt.slot,
				TeacherIDs: tt.teacherIDs,
			})
			if tt.wantKind == "" {
				if conflict != nil {
					t.Fatalf("conflict = %+v, want accept", conflict)
				}
				return
			}
			if conflict == nil || conflict.Kind != tt.wantKind {
				t.Fatalf("conflict = %+v, want %s", conflict, tt.wantKind)
			}
		})
	}
}

func TestCheckBinding_RoomOverlap(t *testing.T) {
	room := uuid.New()
	busy := BlockView{
		BlockID:   uuid.New(),
		SectionID: uuid.New(),
		Slot:      mkSlot(3, "13:00", "13:40"),
		RoomID:    &room,
	}

	otherRoom := uuid.New()
	tests := []struct {
		name     string
		slot     SlotRef
		roomID   *uuid.UUID
		wantKind helper.ErrorKind
	}{
		{name: "same room same time", slot: mkSlot(3, "13:00", "13:40"), roomID: &room, wantKind: helper.KindRoomOverlap},
		{name: "same room back to back", slot: mkSlot(3, "13:40", "14:20"), roomID: &room},
		{name: "other room", slot: mkSlot(3, "13:00", "13:40"), roomID: &otherRoom},
		{name: "no room requested", slot: mkSlot(3, "13:00", "13:40")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := CheckBinding([]BlockView{busy}, Candidate{
				SectionID: uuid.New(),
				Slot:      tt.slot,
				RoomID:    tt.roomID,
			})
			if tt.wantKind == "" {
				if conflict != nil {
					t.Fatalf("conflict = %+v, want accept", conflict)
				}
				return
			}
			if conflict == nil || conflict.Kind != tt.wantKind {
				t.Fatalf("conflict = %+v, want %s", conflict, tt.wantKind)
			}
		})
	}
}

func TestCheckBinding_QuotaCreationOnly(t *testing.T) {
	section := uuid.New()
	quota := 2
	state := []BlockView{
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(1, "07:45", "08:25")},
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(2, "07:45", "08:25")},
	}

	// creation at the cap is rejected
	conflict := CheckBinding(state, Candidate{
		SectionID:  section,
		Slot:       mkSlot(3, "07:45", "08:25"),
		IsCreation: true,
		Quota:      &quota,
	})
	if conflict == nil || conflict.Kind != helper.KindQuotaExceeded {
		t.Fatalf("conflict = %+v, want QuotaExceeded", conflict)
	}

	// edits never re-validate totals
	if conflict := CheckBinding(state, Candidate{
		SectionID:  section,
		Slot:       mkSlot(3, "07:45", "08:25"),
		IsCreation: false,
		Quota:      &quota,
	}); conflict != nil {
		t.Fatalf("edit conflict = %+v, want accept", conflict)
	}

	// unbounded sections never hit quota
	if conflict := CheckBinding(state, Candidate{
		SectionID:  section,
		Slot:       mkSlot(3, "07:45", "08:25"),
		IsCreation: true,
	}); conflict != nil {
		t.Fatalf("unbounded conflict = %+v, want accept", conflict)
	}
}

// Check order is deterministic: a break slot that would also clash on teacher
// reports InvalidBlock, and a duplicate that would also clash reports
// DuplicateBinding.
func TestCheckBinding_SingleCauseOrdering(t *testing.T) {
	section := uuid.New()
	teacher := uuid.New()
	state := []BlockView{
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(1, "09:05", "09:15"), TeacherIDs: []uuid.UUID{teacher}},
	}

	breakCand := Candidate{
		SectionID:  uuid.New(),
		Slot:       SlotRef{Weekday: 1, Start: gridModel.MustClock("09:05"), End: gridModel.MustClock("09:15"), IsBreak: true},
		TeacherIDs: []uuid.UUID{teacher},
	}
	if conflict := CheckBinding(state, breakCand); conflict == nil || conflict.Kind != helper.KindInvalidBlock {
		t.Fatalf("conflict = %+v, want InvalidBlock first", conflict)
	}

	dupCand := Candidate{
		SectionID:  section,
		Slot:       mkSlot(1, "09:05", "09:15"),
		TeacherIDs: []uuid.UUID{teacher},
	}
	if conflict := CheckBinding(state, dupCand); conflict == nil || conflict.Kind != helper.KindDuplicateBinding {
		t.Fatalf("conflict = %+v, want DuplicateBinding before InstructorOverlap", conflict)
	}
}
