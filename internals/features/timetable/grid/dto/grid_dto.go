// file: internals/features/timetable/grid/dto/grid_dto.go
package dto

import (
	model "academia_backend/internals/features/timetable/grid/model"
)

// One selectable tramo of the UI grid axis.
type TramoItem struct {
	Desde  model.ClockMinute `json:"desde"`
	Hasta  model.ClockMinute `json:"hasta"`
	Recreo bool              `json:"recreo"`
}

// GridAxesResponse mirrors what the block-picker grid renders: the weekday
// header plus the Mon-Fri and Saturday tramo columns.
type GridAxesResponse struct {
	Dias []int       `json:"dias"`
	LV   []TramoItem `json:"lv"`
	Sab  []TramoItem `json:"sab"`
}
