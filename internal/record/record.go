package record

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"rizoma/internal/keys"
)

const (
	DiscriminatorSize = 8
	LengthPrefixSize  = 4
	MaxTextLen        = 280

	// Space is the exact allocation of every record account.
	Space = DiscriminatorSize + keys.PublicKeySize + LengthPrefixSize + MaxTextLen

	ownerOffset  = DiscriminatorSize
	lengthOffset = ownerOffset + keys.PublicKeySize
	textOffset   = lengthOffset + LengthPrefixSize
)

var (
	ErrTextTooLong           = errors.New("text exceeds record capacity")
	ErrInvalidText           = errors.New("text is not valid UTF-8")
	ErrInvalidData           = errors.New("invalid record data")
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")
)

// Discriminator tags record accounts: the first 8 bytes of sha256("account:Record").
var Discriminator = discriminator("Record")

func discriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

type Record struct {
	Owner keys.PublicKey
	Text  string
}

// Encode lays the record out into a zero-padded buffer of exactly Space bytes.
func Encode(r Record) ([]byte, error) {
	if len(r.Text) > MaxTextLen {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTextTooLong, len(r.Text), MaxTextLen)
	}
	if !utf8.ValidString(r.Text) {
		return nil, ErrInvalidText
	}
	buf := make([]byte, Space)
	copy(buf, Discriminator[:])
	copy(buf[ownerOffset:], r.Owner[:])
	binary.LittleEndian.PutUint32(buf[lengthOffset:], uint32(len(r.Text)))
	copy(buf[textOffset:], r.Text)
	return buf, nil
}

func Decode(data []byte) (Record, error) {
	if len(data) < textOffset {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrInvalidData, len(data))
	}
	if !bytes.Equal(data[:DiscriminatorSize], Discriminator[:]) {
		return Record{}, ErrDiscriminatorMismatch
	}
	var r Record
	copy(r.Owner[:], data[ownerOffset:lengthOffset])
	n := binary.LittleEndian.Uint32(data[lengthOffset:textOffset])
	if n > MaxTextLen || int(n) > len(data)-textOffset {
		return Record{}, fmt.Errorf("%w: text length %d", ErrInvalidData, n)
	}
	r.Text = string(data[textOffset : textOffset+int(n)])
	return r, nil
}
