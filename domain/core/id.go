package core

import (
	"time"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ReportID identifies a battery report
type ReportID ID

func (id ReportID) String() string { return ID(id).String() }

// Timestamp is the canonical time type for domain records
type Timestamp = time.Time

// Now returns the current timestamp in UTC
func Now() Timestamp {
	return time.Now().UTC()
}
