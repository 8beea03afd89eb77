// file: internals/features/timetable/offerings/model/course_offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DeliveryAnual         = "ANUAL"
	DeliveryCuatrimestral = "CUATRIMESTRAL"
)

// CourseOfferingModel is a subject as taught inside one study plan at one
// target year. Weekly quotas are in 40' catedra hours; nil means no cap.
type CourseOfferingModel struct {
	// PK
	CourseOfferingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_offering_id" json:"course_offering_id"`

	// Identity (plan + subject + target year)
	CourseOfferingPlanID     uuid.UUID `gorm:"type:uuid;not null;column:course_offering_plan_id;uniqueIndex:uq_course_offerings_key;index:idx_course_offerings_plan" json:"course_offering_plan_id"`
	CourseOfferingSubjectID  uuid.UUID `gorm:"type:uuid;not null;column:course_offering_subject_id;uniqueIndex:uq_course_offerings_key" json:"course_offering_subject_id"`
	CourseOfferingTargetYear int       `gorm:"not null;column:course_offering_target_year;uniqueIndex:uq_course_offerings_key" json:"course_offering_target_year"`

	// Display snapshot (subjects live in the core service)
	CourseOfferingSubjectName string `gorm:"size:160;not null;column:course_offering_subject_name" json:"course_offering_subject_name"`

	// Delivery
	CourseOfferingDeliveryMode string `gorm:"size:16;not null;default:'ANUAL';column:course_offering_delivery_mode" json:"course_offering_delivery_mode"`

	// Weekly catedra-hour quotas: per-term values win over the general cap.
	CourseOfferingWeeklyQuotaTerm1 *int `gorm:"column:course_offering_weekly_quota_term1" json:"course_offering_weekly_quota_term1,omitempty"`
	CourseOfferingWeeklyQuotaTerm2 *int `gorm:"column:course_offering_weekly_quota_term2" json:"course_offering_weekly_quota_term2,omitempty"`
	CourseOfferingWeeklyQuota      *int `gorm:"column:course_offering_weekly_quota" json:"course_offering_weekly_quota,omitempty"`

	// Free-form extras (curriculum codes, external references)
	CourseOfferingMeta datatypes.JSON `gorm:"column:course_offering_meta;type:jsonb" json:"course_offering_meta,omitempty"`

	// Timestamps
	CourseOfferingCreatedAt time.Time `gorm:"column:course_offering_created_at;autoCreateTime" json:"course_offering_created_at"`
	CourseOfferingUpdatedAt time.Time `gorm:"column:course_offering_updated_at;autoUpdateTime" json:"course_offering_updated_at"`
}

func (CourseOfferingModel) TableName() string { return "course_offerings" }

// QuotaForTerm resolves the weekly quota for a term: term-specific value
// first, then the general cap, nil = unbounded.
func (m *CourseOfferingModel) QuotaForTerm(term int) *int {
	switch term {
	case 1:
		if m.CourseOfferingWeeklyQuotaTerm1 != nil {
			return m.CourseOfferingWeeklyQuotaTerm1
		}
	case 2, 3:
		if m.CourseOfferingWeeklyQuotaTerm2 != nil {
			return m.CourseOfferingWeeklyQuotaTerm2
		}
	}
	return m.CourseOfferingWeeklyQuota
}
