package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// RowFingerprint identifies a row by its exact cell contents
type RowFingerprint Hash

// ComputeRowFingerprint hashes the rendered cells of a row. Cells are joined
// with the ASCII unit separator so adjacent values cannot collide.
func ComputeRowFingerprint(cells []string) RowFingerprint {
	joined := strings.Join(cells, "\x1f")
	return RowFingerprint(NewHash([]byte(joined)))
}

func (f RowFingerprint) String() string { return Hash(f).String() }
