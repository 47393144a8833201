// Package row implements the fixed-width record codec: an in-memory Row and
// its 291-byte packed on-disk image (id, username, email).
package row

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	// UsernameSize is the maximum byte length of the username field.
	UsernameSize = 32
	// EmailSize is the maximum byte length of the email field.
	EmailSize = 255

	idSize         = 4
	idOffset       = 0
	usernameOffset = idOffset + idSize
	emailOffset    = usernameOffset + UsernameSize

	// Size is the exact on-disk width of a serialized row.
	Size = idSize + UsernameSize + EmailSize
)

// Row is the in-memory representation of a single record.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Serialize packs row into dst, which must be exactly Size bytes. The id is
// written little-endian; username and email are copied into their fixed
// windows and the remainder of each window is zero-filled, so every byte of
// dst is touched deterministically.
func Serialize(r Row, dst []byte) error {
	if len(dst) != Size {
		return fmt.Errorf("row: serialize destination is %d bytes, want %d", len(dst), Size)
	}
	if len(r.Username) > UsernameSize {
		return fmt.Errorf("row: username %d bytes exceeds %d", len(r.Username), UsernameSize)
	}
	if len(r.Email) > EmailSize {
		return fmt.Errorf("row: email %d bytes exceeds %d", len(r.Email), EmailSize)
	}

	binary.LittleEndian.PutUint32(dst[idOffset:], r.ID)

	// clear (builtin) zero-fills each field before the copy, so trailing
	// bytes are overwritten deterministically rather than left stale.
	usernameField := dst[usernameOffset : usernameOffset+UsernameSize]
	clear(usernameField)
	copy(usernameField, r.Username)

	emailField := dst[emailOffset : emailOffset+EmailSize]
	clear(emailField)
	copy(emailField, r.Email)

	return nil
}

// Deserialize is the inverse of Serialize: src must be exactly Size bytes.
func Deserialize(src []byte) (Row, error) {
	if len(src) != Size {
		return Row{}, fmt.Errorf("row: deserialize source is %d bytes, want %d", len(src), Size)
	}

	var r Row
	r.ID = binary.LittleEndian.Uint32(src[idOffset:])
	r.Username = strings.TrimRight(string(src[usernameOffset:usernameOffset+UsernameSize]), "\x00")
	r.Email = strings.TrimRight(string(src[emailOffset:emailOffset+EmailSize]), "\x00")
	return r, nil
}
