package device

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Location is where the terminal is installed.
type Location struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
	Address   string  `bson:"address,omitempty"`
}

// Device is an attendance terminal (kiosk, NFC reader, fingerprint
// scanner) punches may be attributed to.
type Device struct {
	ID           string     `bson:"_id,omitempty"`
	Code         string     `bson:"code"`
	Name         string     `bson:"name"`
	DeviceType   string     `bson:"device_type"`
	Status       Status     `bson:"status"`
	Location     *Location  `bson:"location,omitempty"`
	LastSeenAt   *time.Time `bson:"last_seen_at,omitempty"`
	RegisteredAt time.Time  `bson:"registered_at"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}
