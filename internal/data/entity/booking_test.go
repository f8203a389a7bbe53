package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{CheckIn: day("2024-01-10"), CheckOut: day("2024-01-15")}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"straddles checkout", "2024-01-14", "2024-01-16", true},
		{"starts on checkout day", "2024-01-15", "2024-01-20", false},
		{"ends on checkin day", "2024-01-05", "2024-01-10", false},
		{"contained", "2024-01-11", "2024-01-12", true},
		{"contains", "2024-01-01", "2024-01-31", true},
		{"identical", "2024-01-10", "2024-01-15", true},
		{"before", "2024-01-01", "2024-01-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(day(tt.checkIn), day(tt.checkOut)))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		checkIn, checkOut string
		want              int
	}{
		{"2024-01-10", "2024-01-13", 3},
		{"2024-02-28", "2024-02-29", 1},
		{"2024-02-28", "2024-03-01", 2},
		{"2024-01-01", "2024-01-05", 4},
		{"2023-01-01", "2024-01-01", 365},
		// longer than time.Duration can represent
		{"2000-01-01", "2400-01-01", 146097},
	}

	for _, tt := range tests {
		t.Run(tt.checkIn+"_"+tt.checkOut, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(day(tt.checkIn), day(tt.checkOut)))
		})
	}
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.False(t, BookingStatus("EXPIRED").Valid())

	b := &Booking{Status: BookingStatusCancelled}
	assert.False(t, b.HoldsInventory())
	b.Status = BookingStatusPending
	assert.True(t, b.HoldsInventory())
}
