package region

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// IDLength is the length of every generated mod id.
const IDLength = 4

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// IDSource produces mod ids.
//
// Implementations MUST be safe for concurrent use.
type IDSource interface {
	// NewID returns an id of IDLength characters.
	NewID() string
}

// uuidSource condenses random v4 UUIDs into short ids.
type uuidSource struct{}

// NewUUIDSource returns an IDSource backed by uuid.New.
//
// Postcondition: every id has IDLength characters drawn from [0-9A-Za-z].
func NewUUIDSource() IDSource {
	return uuidSource{}
}

// NewID condenses the first 32 random bits of a v4 UUID into IDLength base-62 digits.
func (uuidSource) NewID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[:4])
	var b [IDLength]byte
	for i := range b {
		b[i] = idAlphabet[n%uint32(len(idAlphabet))]
		n /= uint32(len(idAlphabet))
	}
	return string(b[:])
}
