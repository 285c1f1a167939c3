package domain

import "time"

// SlotDuration is the length of a visit slot; two appointments whose start
// times fall within the same rolling window of this size conflict.
const SlotDuration = time.Hour

type Appointment struct {
	ID          uint
	ClientName  string
	ClientPhone string
	ScheduledAt time.Time
	Address     string
	Notes       *string
	CreatedAt   time.Time
}
