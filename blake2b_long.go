package argon2

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// blake2bLong fills out with the Argon2 variable-length hash H' of the
// concatenated inputs (RFC 9106 section 3.3). The desired length is
// bound into the hash as a 4-byte little-endian prefix.
//
// Outputs of up to 64 bytes are a single Blake2b digest of that exact
// size. Longer outputs chain 64-byte Blake2b states, emitting the first
// 32 bytes of each, with a final digest sized to the remaining tail.
func blake2bLong(out []byte, inputs ...[]byte) error {
	if len(out) == 0 {
		return nil
	}

	var outLen [4]byte
	binary.LittleEndian.PutUint32(outLen[:], uint32(len(out)))

	if len(out) <= blake2b.Size {
		h, err := blake2b.New(len(out), nil)
		if err != nil {
			return fmt.Errorf("argon2: blake2b: %w", err)
		}
		h.Write(outLen[:])
		for _, in := range inputs {
			h.Write(in)
		}
		h.Sum(out[:0])
		return nil
	}

	h, err := blake2b.New512(nil)
	if err != nil {
		return fmt.Errorf("argon2: blake2b: %w", err)
	}
	h.Write(outLen[:])
	for _, in := range inputs {
		h.Write(in)
	}

	var v [blake2b.Size]byte
	h.Sum(v[:0])
	copy(out, v[:32])
	pos := 32

	for len(out)-pos > blake2b.Size {
		v = blake2b.Sum512(v[:])
		copy(out[pos:], v[:32])
		pos += 32
	}

	tail, err := blake2b.New(len(out)-pos, nil)
	if err != nil {
		return fmt.Errorf("argon2: blake2b: %w", err)
	}
	tail.Write(v[:])
	tail.Sum(out[:pos])

	return nil
}
