package entity

// Appointment is a booking of one base slot within a day.
// At most one appointment exists per (day key, base slot).
type Appointment struct {
	BaseSlot     int    `json:"baseSlot"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	WithScissors bool   `json:"withScissors"`
	CreatedAt    int64  `json:"createdAt"`
}

// DayAvailability is an explicit override of the allowed slots of a day.
type DayAvailability struct {
	Slots []int `json:"slots"`
}

const (
	CancelledByAdmin    = "admin"
	CancelledByDisabled = "admin/disabled"
)

// CancellationRecord is appended whenever an appointment is removed. Never mutated.
type CancellationRecord struct {
	Timestamp   int64        `json:"ts"`
	DayKey      string       `json:"dayKey"`
	BaseSlot    int          `json:"baseSlot"`
	By          string       `json:"by"`
	Appointment *Appointment `json:"appt"`
}

type Logs struct {
	Cancellations []*CancellationRecord `json:"cancellations"`
}

// Person is a snapshot of a client, with no link back to appointments.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type PerkCode struct {
	Code     string `json:"code"`
	IssuedAt int64  `json:"ts"`
	Sent     bool   `json:"sent"`
}
