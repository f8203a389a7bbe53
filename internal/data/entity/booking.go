package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ActiveBookingStatuses are the statuses that hold inventory.
var ActiveBookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking holds one unit of a room for [CheckIn, CheckOut). CheckOut is not
// consumed, so a guest may check in on the day another checks out.
type Booking struct {
	Base
	Reference  string        `db:"reference"`
	UserID     uuid.UUID     `db:"user_id"`
	RoomID     uuid.UUID     `db:"room_id"`
	CheckIn    time.Time     `db:"check_in"`
	CheckOut   time.Time     `db:"check_out"`
	TotalPrice int64         `db:"total_price"`
	Status     BookingStatus `db:"status"`
}

// Overlaps reports whether the booking's stay intersects [checkIn, checkOut).
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return RangesOverlap(b.CheckIn, b.CheckOut, checkIn, checkOut)
}

// HoldsInventory is true for every status except CANCELLED.
func (b *Booking) HoldsInventory() bool {
	return b.Status != BookingStatusCancelled
}

// RangesOverlap implements the half-open rule: [a,b) and [c,d) intersect iff a < d and c < b.
func RangesOverlap(a, b, c, d time.Time) bool {
	return a.Before(d) && c.Before(b)
}

const secondsPerDay = 24 * 60 * 60

// Nights counts whole UTC days in [checkIn, checkOut). Unix seconds keep it
// exact for ranges beyond what time.Duration can hold.
func Nights(checkIn, checkOut time.Time) int {
	return int((checkOut.Unix() - checkIn.Unix()) / secondsPerDay)
}
