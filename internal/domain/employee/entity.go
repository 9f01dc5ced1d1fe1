package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type EmploymentType string

const (
	EmploymentTypeFulltime EmploymentType = "fulltime"
	EmploymentTypeParttime EmploymentType = "parttime"
	EmploymentTypeContract EmploymentType = "contract"
)

// Employee is the collaborator entity the attendance core resolves
// punches against. Status mirrors the owning user account's status.
type Employee struct {
	ID             string         `bson:"_id,omitempty"`
	EmployeeID     string         `bson:"employee_id"`
	FullName       string         `bson:"full_name"`
	DepartmentRef  string         `bson:"department_ref"`
	Position       string         `bson:"position"`
	NFCUID         *string        `bson:"nfc_uid,omitempty"`
	Status         Status         `bson:"status"`
	EmploymentType EmploymentType `bson:"employment_type"`
	LastCheckInAt  *time.Time     `bson:"last_check_in_at,omitempty"`
	LastCheckOutAt *time.Time     `bson:"last_check_out_at,omitempty"`
	CreatedAt      time.Time      `bson:"created_at"`
	UpdatedAt      time.Time      `bson:"updated_at"`
}
