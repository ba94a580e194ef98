package models

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Record IDs are short prefixed strings ("cm4perf3f9a1c") rather than full
// UUIDs. The prefix identifies the entity type; the suffix is random hex.
func newID(prefix string, n int) string {
	u := uuid.New()
	return prefix + hex.EncodeToString(u[:])[:n]
}

func NewUserID() string         { return newID("cm4user", 6) }
func NewAthleteID() string      { return newID("cm4", 9) }
func NewTestID() string         { return newID("cm4test", 6) }
func NewPerformanceID() string  { return newID("cm4perf", 6) }
func NewBadgeID() string        { return newID("cm4badge", 5) }
func NewNotificationID() string { return newID("cm4notif", 5) }
