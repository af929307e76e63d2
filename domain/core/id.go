package core

import (
	"fmt"
	"strings"

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

// ProfileID identifies a stored dataset profile
type ProfileID ID

func NewProfileID() ProfileID {
	return ProfileID(NewID())
}

func (id ProfileID) String() string { return ID(id).String() }

// ParseProfileID parses a string into a ProfileID
func ParseProfileID(s string) (ProfileID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("profile ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("profile ID %q is not a valid UUID", s)
	}
	return ProfileID(s), nil
}
