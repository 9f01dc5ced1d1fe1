package shift

import "time"

// Shift is a static schedule lookup record. The attendance core only
// resolves codes; it never evaluates shift times.
type Shift struct {
	ID                string    `bson:"_id,omitempty"`
	Code              string    `bson:"code"`
	Name              string    `bson:"name"`
	StartTime         string    `bson:"start_time"` // HH:mm
	EndTime           string    `bson:"end_time"`   // HH:mm
	GraceLateMinutes  int       `bson:"grace_late_minutes"`
	EarlyLeaveMinutes int       `bson:"early_leave_minutes"`
	DaysOfWeek        []int     `bson:"days_of_week"` // 0-6 (Sun-Sat)
	IsFlexible        bool      `bson:"is_flexible"`
	IsActive          bool      `bson:"is_active"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}
