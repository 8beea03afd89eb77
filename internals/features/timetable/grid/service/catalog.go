// file: internals/features/timetable/grid/service/catalog.go
package service

import (
	helper "academia_backend/internals/helpers"

	model "academia_backend/internals/features/timetable/grid/model"
)

// TimeBlock is one grid catalog entry: a contiguous interval of a shift's day,
// either a teaching block or a break. Breaks are explicit rows, never inferred
// from duration.
type TimeBlock struct {
	Weekday int               `json:"weekday"`
	Order   int               `json:"order"`
	Start   model.ClockMinute `json:"start"`
	End     model.ClockMinute `json:"end"`
	IsBreak bool              `json:"is_break"`
}

type segment struct {
	start, end string
	isBreak    bool
}

// Daily layouts per shift: 40-minute blocks plus the institutional recreos.
// Same template for every weekday the shift runs on.
var dayTemplates = map[Shift][]segment{
	ShiftManana: {
		{"07:45", "08:25", false},
		{"08:25", "09:05", false},
		{"09:05", "09:15", true},
		{"09:15", "09:55", false},
		{"09:55", "10:35", false},
		{"10:35", "10:45", true},
		{"10:45", "11:25", false},
		{"11:25", "12:05", false},
		{"12:05", "12:45", false},
	},
	ShiftTarde: {
		{"13:00", "13:40", false},
		{"13:40", "14:20", false},
		{"14:20", "14:30", true},
		{"14:30", "15:10", false},
		{"15:10", "15:50", false},
		{"15:50", "16:00", true},
		{"16:00", "16:40", false},
		{"16:40", "17:20", false},
		{"17:20", "18:00", false},
	},
	ShiftVespertino: {
		{"18:10", "18:50", false},
		{"18:50", "19:30", false},
		{"19:30", "19:40", true},
		{"19:40", "20:20", false},
		{"20:20", "21:00", false},
		{"21:00", "21:10", true},
		{"21:10", "21:50", false},
		{"21:50", "22:30", false},
		{"22:30", "23:10", false},
	},
	ShiftSabado: {
		{"09:00", "09:40", false},
		{"09:40", "10:20", false},
		{"10:20", "10:30", true},
		{"10:30", "11:10", false},
		{"11:10", "11:50", false},
		{"11:50", "12:00", true},
		{"12:00", "12:40", false},
		{"12:40", "13:20", false},
		{"13:20", "14:00", false},
	},
}

// DayTemplate returns the ordered per-day blocks of a shift (weekday left 0).
func DayTemplate(shift Shift) ([]TimeBlock, error) {
	segs, ok := dayTemplates[shift]
	if !ok {
		return nil, helper.E(helper.KindUnknownShift, "unknown shift: "+string(shift))
	}
	out := make([]TimeBlock, 0, len(segs))
	for i, s := range segs {
		out = append(out, TimeBlock{
			Order:   i,
			Start:   model.MustClock(s.start),
			End:     model.MustClock(s.end),
			IsBreak: s.isBreak,
		})
	}
	return out, nil
}

// BlocksForShift expands the day template across the shift's weekdays,
// ordered by (weekday, order).
func BlocksForShift(shift Shift) ([]TimeBlock, error) {
	tpl, err := DayTemplate(shift)
	if err != nil {
		return nil, err
	}
	days := shift.Weekdays()
	out := make([]TimeBlock, 0, len(days)*len(tpl))
	for _, d := range days {
		for _, b := range tpl {
			b.Weekday = d
			out = append(out, b)
		}
	}
	return out, nil
}

// BlockAt looks up the catalog entry starting at (weekday, start) for a shift.
// The second return is false when the shift has no block there.
func BlockAt(shift Shift, weekday int, start model.ClockMinute) (TimeBlock, bool) {
	tpl, err := DayTemplate(shift)
	if err != nil {
		return TimeBlock{}, false
	}
	onDay := false
	for _, d := range shift.Weekdays() {
		if d == weekday {
			onDay = true
			break
		}
	}
	if !onDay {
		return TimeBlock{}, false
	}
	for _, b := range tpl {
		if b.Start == start {
			b.Weekday = weekday
			return b, true
		}
	}
	return TimeBlock{}, false
}
