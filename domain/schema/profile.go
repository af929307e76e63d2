package schema

import (
	"time"

	"tabprof/domain/core"
)

// Profile is a stored dataset profile: the descriptor plus identity and
// provenance for persistence and retrieval.
type Profile struct {
	ID         core.ProfileID    `json:"id"`
	SourceName string            `json:"source_name"`
	Descriptor DatasetDescriptor `json:"descriptor"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewProfile wraps a built descriptor for storage.
func NewProfile(sourceName string, descriptor DatasetDescriptor) *Profile {
	return &Profile{
		ID:         core.NewProfileID(),
		SourceName: sourceName,
		Descriptor: descriptor,
		CreatedAt:  time.Now().UTC(),
	}
}
