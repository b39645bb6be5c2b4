// Package argon2 provides a pure-Go implementation of the Argon2
// memory-hard password hashing and key derivation function (RFC 9106),
// covering all three variants (Argon2d, Argon2i, Argon2id) and both
// published versions (0x10 and 0x13).
//
// Example usage:
//
//	params, err := argon2.NewParams(64*1024, 3, 4, 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	hasher := argon2.New(argon2.Argon2id, argon2.Version0x13, params)
//	key := make([]byte, 32)
//	if err := hasher.Hash(password, salt, key); err != nil {
//		log.Fatal(err)
//	}
//
// Callers that want control over the working memory can allocate it once
// with NewMemory and reuse it across calls via HashWithMemory, or obtain
// only the filled memory state with FillMemory.
package argon2

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Input length bounds.
const (
	// MaxPasswordLen is the maximum password length in bytes (2^32 - 1).
	MaxPasswordLen = 0xFFFFFFFF

	// MinSaltLen is the minimum salt length in bytes.
	MinSaltLen = 8

	// MaxSaltLen is the maximum salt length in bytes (2^32 - 1).
	MaxSaltLen = 0xFFFFFFFF

	// RecommendedSaltLen is the recommended salt length for password
	// hashing in bytes.
	RecommendedSaltLen = 16

	// MaxSecretLen is the maximum secret ("pepper") length in bytes
	// (2^32 - 1).
	MaxSecretLen = 0xFFFFFFFF
)

// Argon2 is a configured hashing context: a variant, a version, a set of
// cost parameters and optionally a secret. A context is immutable and
// safe for concurrent use; each Hash call works on its own memory.
type Argon2 struct {
	algorithm Algorithm
	version   Version
	params    Params
	secret    []byte
}

// New creates an Argon2 context. params must come from NewParams or
// DefaultParams.
func New(algorithm Algorithm, version Version, params Params) *Argon2 {
	return &Argon2{
		algorithm: algorithm,
		version:   version,
		params:    params,
	}
}

// NewWithSecret creates an Argon2 context whose hashes additionally
// depend on a secret key ("pepper"). The secret is folded into the
// initial hash alongside the password and salt.
func NewWithSecret(secret []byte, algorithm Algorithm, version Version, params Params) (*Argon2, error) {
	if uint64(len(secret)) > MaxSecretLen {
		return nil, ErrSecretTooLong
	}

	a := New(algorithm, version, params)
	a.secret = append([]byte(nil), secret...)
	return a, nil
}

// Algorithm returns the configured variant.
func (a *Argon2) Algorithm() Algorithm { return a.algorithm }

// Version returns the configured version.
func (a *Argon2) Version() Version { return a.version }

// Params returns the configured cost parameters.
func (a *Argon2) Params() *Params { return &a.params }

// NewMemory allocates a zeroed block buffer of exactly the length the
// given parameters require.
func NewMemory(params *Params) []Block {
	return make([]Block, params.BlockCount())
}

// Hash derives len(out) bytes from password and salt into out,
// allocating the working memory internally and zeroing it afterwards.
func (a *Argon2) Hash(password, salt, out []byte) error {
	memory := NewMemory(&a.params)
	defer func() {
		for i := range memory {
			memory[i].Zero()
		}
	}()

	return a.HashWithMemory(password, salt, out, memory)
}

// HashWithMemory derives len(out) bytes from password and salt into out,
// using the caller-supplied block buffer as working memory. The buffer
// must have exactly Params.BlockCount elements; it is fully overwritten
// and owned by the caller afterwards, including any cleanup.
//
// len(out) must lie within [MinOutputLen, MaxOutputLen], or match the
// configured output length exactly when Params pins one.
func (a *Argon2) HashWithMemory(password, salt, out []byte, memory []Block) error {
	minLen, maxLen := uint64(MinOutputLen), uint64(MaxOutputLen)
	if fixed := a.params.OutputLen(); fixed != 0 {
		minLen, maxLen = uint64(fixed), uint64(fixed)
	}
	if uint64(len(out)) < minLen {
		return ErrOutputTooShort
	}
	if uint64(len(out)) > maxLen {
		return ErrOutputTooLong
	}

	if err := verifyInputs(password, salt); err != nil {
		return err
	}

	h0 := a.initialHash(password, salt, uint32(len(out)))

	if err := a.fillMemory(memory, h0[:]); err != nil {
		return err
	}

	return a.finalize(memory, out)
}

// FillMemory runs only the memory-filling stage, leaving the final
// memory state in the caller-supplied buffer without producing a digest.
// The preconditions match HashWithMemory except that no output length is
// involved (it enters the initial hash as zero).
func (a *Argon2) FillMemory(password, salt []byte, memory []Block) error {
	if err := verifyInputs(password, salt); err != nil {
		return err
	}

	h0 := a.initialHash(password, salt, 0)

	return a.fillMemory(memory, h0[:])
}

// initialHash computes H0, the 64-byte digest binding every input of the
// operation: the cost parameters, output length, version and variant,
// then the length-prefixed password, salt, secret and associated data.
// A missing secret contributes an explicit zero length. All integers are
// little-endian 32-bit.
func (a *Argon2) initialHash(password, salt []byte, tagLen uint32) [blake2b.Size]byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		// Unreachable: New512 fails only for invalid key lengths.
		panic("argon2: blake2b.New512: " + err.Error())
	}

	putUint32(h, a.params.Parallelism())
	putUint32(h, tagLen)
	putUint32(h, a.params.MemoryCost())
	putUint32(h, a.params.TimeCost())
	putUint32(h, uint32(a.version))
	putUint32(h, uint32(a.algorithm))

	putUint32(h, uint32(len(password)))
	h.Write(password)
	putUint32(h, uint32(len(salt)))
	h.Write(salt)
	putUint32(h, uint32(len(a.secret)))
	h.Write(a.secret)
	putUint32(h, uint32(len(a.params.AssociatedData())))
	h.Write(a.params.AssociatedData())

	var h0 [blake2b.Size]byte
	h.Sum(h0[:0])
	return h0
}

// verifyInputs checks the only two runtime preconditions on hash inputs.
func verifyInputs(password, salt []byte) error {
	if uint64(len(password)) > MaxPasswordLen {
		return ErrPasswordTooLong
	}

	if len(salt) < MinSaltLen {
		return ErrSaltTooShort
	}
	if uint64(len(salt)) > MaxSaltLen {
		return ErrSaltTooLong
	}

	return nil
}

func putUint32(h hash.Hash, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	h.Write(buf[:])
}
