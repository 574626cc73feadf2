package store

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// objectIDLen is the length of an object id in hex characters.
const objectIDLen = 24

// NewObjectID generates a new object id: a 4 byte big-endian unix timestamp
// followed by 8 random bytes, hex encoded to 24 characters.
//
// The timestamp prefix keeps ids roughly sortable by creation time; the
// random suffix makes collisions negligible without coordination.
func NewObjectID() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return hex.EncodeToString(raw[:])
}

// IsValidObjectID reports whether s has the object id format: exactly 24 hex
// characters. It does not check that a document with this id exists.
func IsValidObjectID(s string) bool {
	if len(s) != objectIDLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
