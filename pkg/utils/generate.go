package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== BOOKING REFERENCE ====================

// GenerateBookingReference builds a human readable reference for emails and
// support lookups. Format: HB-YYYYMMDD-XXXXXX
func GenerateBookingReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("HB-%s-%s", now.UTC().Format("20060102"), suffix)
}
