package department

import "time"

type Department struct {
	ID          string    `bson:"_id,omitempty"`
	Code        string    `bson:"code"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
