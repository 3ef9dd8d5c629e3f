package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewStudentID returns a campus identifier of the form "#82910442".
// Student ids are display-only; uniqueness is not enforced.
func NewStudentID() string {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "#00000000"
	}
	n := binary.BigEndian.Uint32(buf[:]) % 100000000
	return fmt.Sprintf("#%08d", n)
}
