package service

import (
	"testing"

	"github.com/google/uuid"

	gridModel "academia_backend/internals/features/timetable/grid/model"
	gridService "academia_backend/internals/features/timetable/grid/service"
	helper "academia_backend/internals/helpers"
)

func key(weekday int, start string) DesiredKey {
	return DesiredKey{Weekday: weekday, Start: gridModel.MustClock(start)}
}

func TestBuildReconcilePlan_Diff(t *testing.T) {
	section := uuid.New()
	keepID, dropID := uuid.New(), uuid.New()

	state := []BlockView{
		{BlockID: keepID, SectionID: section, Slot: mkSlot(1, "07:45", "08:25")},
		{BlockID: dropID, SectionID: section, Slot: mkSlot(2, "07:45", "08:25")},
	}
	current := currentKeys(state, section)

	plan := BuildReconcilePlan(gridService.ShiftManana, section, nil, state, current,
		[]DesiredKey{key(1, "07:45"), key(3, "08:25")}, nil, nil)

	if len(plan.Adds) != 1 || plan.Adds[0].Key != key(3, "08:25") {
		t.Fatalf("adds = %+v, want one add at (3, 08:25)", plan.Adds)
	}
	if plan.Adds[0].Block.End != gridModel.MustClock("09:05") {
		t.Errorf("resolved end = %s, want 09:05", plan.Adds[0].Block.End)
	}
	if len(plan.RemoveIDs) != 1 || plan.RemoveIDs[0] != dropID {
		t.Fatalf("removes = %v, want [%v]", plan.RemoveIDs, dropID)
	}
	if len(plan.Warnings) != 0 {
		t.Fatalf("warnings = %+v, want none", plan.Warnings)
	}
}

func TestBuildReconcilePlan_Idempotent(t *testing.T) {
	section := uuid.New()
	desired := []DesiredKey{key(1, "07:45"), key(2, "08:25")}

	// First pass: empty state, both keys planned.
	first := BuildReconcilePlan(gridService.ShiftManana, section, nil, nil, map[DesiredKey]uuid.UUID{}, desired, nil, nil)
	if len(first.Adds) != 2 || len(first.RemoveIDs) != 0 {
		t.Fatalf("first pass adds=%d removes=%d, want 2/0", len(first.Adds), len(first.RemoveIDs))
	}

	// Simulate the commit, then replay the same desired set.
	state := make([]BlockView, 0, 2)
	for _, add := range first.Adds {
		state = append(state, BlockView{
			BlockID:   uuid.New(),
			SectionID: section,
			Slot:      SlotRef{Weekday: add.Block.Weekday, Start: add.Block.Start, End: add.Block.End},
		})
	}
	second := BuildReconcilePlan(gridService.ShiftManana, section, nil, state, currentKeys(state, section), desired, nil, nil)
	if len(second.Adds) != 0 || len(second.RemoveIDs) != 0 || len(second.Warnings) != 0 {
		t.Fatalf("second pass adds=%d removes=%d warnings=%d, want 0/0/0",
			len(second.Adds), len(second.RemoveIDs), len(second.Warnings))
	}
}

// Scenario: submitting the 09:05 recreo key yields an InvalidBlock warning and
// nothing is planned.
func TestBuildReconcilePlan_BreakKeyRejected(t *testing.T) {
	section := uuid.New()

	plan := BuildReconcilePlan(gridService.ShiftManana, section, nil, nil, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "09:05")}, nil, nil)

	if len(plan.Adds) != 0 {
		t.Fatalf("adds = %+v, want none", plan.Adds)
	}
	if len(plan.Warnings) != 1 || plan.Warnings[0].Kind != helper.KindInvalidBlock {
		t.Fatalf("warnings = %+v, want one InvalidBlock", plan.Warnings)
	}
}

func TestBuildReconcilePlan_UnknownKeyRejected(t *testing.T) {
	plan := BuildReconcilePlan(gridService.ShiftManana, uuid.New(), nil, nil, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "06:00")}, nil, nil)
	if len(plan.Adds) != 0 || len(plan.Warnings) != 1 || plan.Warnings[0].Kind != helper.KindInvalidBlock {
		t.Fatalf("plan = %+v, want single InvalidBlock warning", plan)
	}
}

// Scenario: teacher X already holds (Monday, 08:25-09:05) on another section;
// asking for that key with X on a second section warns InstructorOverlap.
func TestBuildReconcilePlan_InstructorOverlapAcrossSections(t *testing.T) {
	teacherX := uuid.New()
	s1, s2 := uuid.New(), uuid.New()

	state := []BlockView{
		{BlockID: uuid.New(), SectionID: s1, Slot: mkSlot(1, "08:25", "09:05"), TeacherIDs: []uuid.UUID{teacherX}},
	}

	plan := BuildReconcilePlan(gridService.ShiftManana, s2, nil, state, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "08:25")}, nil, []uuid.UUID{teacherX})

	if len(plan.Adds) != 0 {
		t.Fatalf("adds = %+v, want none", plan.Adds)
	}
	if len(plan.Warnings) != 1 || plan.Warnings[0].Kind != helper.KindInstructorOverlap {
		t.Fatalf("warnings = %+v, want one InstructorOverlap", plan.Warnings)
	}
	if plan.Warnings[0].TeacherID == nil || *plan.Warnings[0].TeacherID != teacherX {
		t.Errorf("warning teacher = %v, want %v", plan.Warnings[0].TeacherID, teacherX)
	}
}

// Quota 3: three keys accepted, the fourth warns QuotaExceeded; freeing one
// block lets one more in.
func TestBuildReconcilePlan_QuotaBoundary(t *testing.T) {
	section := uuid.New()
	quota := 3

	plan := BuildReconcilePlan(gridService.ShiftManana, section, &quota, nil, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "07:45"), key(2, "07:45"), key(3, "07:45"), key(4, "07:45")}, nil, nil)

	if len(plan.Adds) != 3 {
		t.Fatalf("adds = %d, want 3", len(plan.Adds))
	}
	if len(plan.Warnings) != 1 || plan.Warnings[0].Kind != helper.KindQuotaExceeded {
		t.Fatalf("warnings = %+v, want one QuotaExceeded", plan.Warnings)
	}

	// Persist the three accepted blocks, then swap one key for another.
	state := make([]BlockView, 0, 3)
	for _, add := range plan.Adds {
		state = append(state, BlockView{
			BlockID:   uuid.New(),
			SectionID: section,
			Slot:      SlotRef{Weekday: add.Block.Weekday, Start: add.Block.Start, End: add.Block.End},
		})
	}
	// Additions are checked against the pre-removal count, so swapping a key
	// while at the cap warns: the removal lands, the replacement key goes
	// through on the next call.
	swap := BuildReconcilePlan(gridService.ShiftManana, section, &quota, state, currentKeys(state, section),
		[]DesiredKey{key(1, "07:45"), key(2, "07:45"), key(5, "07:45")}, nil, nil)
	if len(swap.Adds) != 0 || len(swap.RemoveIDs) != 1 {
		t.Fatalf("swap adds=%d removes=%d, want 0/1", len(swap.Adds), len(swap.RemoveIDs))
	}
	if len(swap.Warnings) != 1 || swap.Warnings[0].Kind != helper.KindQuotaExceeded {
		t.Fatalf("swap warnings = %+v, want one QuotaExceeded", swap.Warnings)
	}
}

func TestBuildReconcilePlan_QuotaAfterRemoval(t *testing.T) {
	section := uuid.New()
	quota := 3

	// Two live blocks, quota 3: one more fits.
	state := []BlockView{
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(1, "07:45", "08:25")},
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(2, "07:45", "08:25")},
	}
	plan := BuildReconcilePlan(gridService.ShiftManana, section, &quota, state, currentKeys(state, section),
		[]DesiredKey{key(1, "07:45"), key(2, "07:45"), key(3, "07:45")}, nil, nil)
	if len(plan.Adds) != 1 || len(plan.Warnings) != 0 {
		t.Fatalf("adds=%d warnings=%+v, want 1 add and no warnings", len(plan.Adds), plan.Warnings)
	}
}

func TestBuildReconcilePlan_DuplicateDesiredKeysCollapse(t *testing.T) {
	section := uuid.New()
	plan := BuildReconcilePlan(gridService.ShiftManana, section, nil, nil, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "07:45"), key(1, "07:45")}, nil, nil)
	if len(plan.Adds) != 1 {
		t.Fatalf("adds = %d, want 1 (duplicates collapse)", len(plan.Adds))
	}
}

func TestBuildReconcilePlan_EmptyDesiredRemovesEverything(t *testing.T) {
	section := uuid.New()
	state := []BlockView{
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(1, "07:45", "08:25")},
		{BlockID: uuid.New(), SectionID: section, Slot: mkSlot(2, "07:45", "08:25")},
	}
	plan := BuildReconcilePlan(gridService.ShiftManana, section, nil, state, currentKeys(state, section), nil, nil, nil)
	if len(plan.Adds) != 0 || len(plan.RemoveIDs) != 2 {
		t.Fatalf("adds=%d removes=%d, want 0/2", len(plan.Adds), len(plan.RemoveIDs))
	}
}

// Keys inside one request see each other: the same teacher on two overlapping
// requests is impossible, but two different keys with the same teacher on the
// same day must both land when they do not overlap.
func TestBuildReconcilePlan_IntraRequestState(t *testing.T) {
	section := uuid.New()
	teacher := uuid.New()

	plan := BuildReconcilePlan(gridService.ShiftManana, section, nil, nil, map[DesiredKey]uuid.UUID{},
		[]DesiredKey{key(1, "07:45"), key(1, "08:25")}, nil, []uuid.UUID{teacher})
	if len(plan.Adds) != 2 || len(plan.Warnings) != 0 {
		t.Fatalf("adds=%d warnings=%+v, want 2 back-to-back adds", len(plan.Adds), plan.Warnings)
	}
}
