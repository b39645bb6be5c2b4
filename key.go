package argon2

// DKey derives a key of keyLen bytes from the password and salt using
// Argon2d, version 0x13. Argon2d's data-dependent addressing gives the
// strongest tradeoff resistance but is observable through cache timing,
// so prefer it only where the machine doing the hashing is trusted
// (e.g. server-side proof-of-work or KDF chains).
func DKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	return deriveKey(Argon2d, password, salt, time, memory, threads, keyLen)
}

// IKey derives a key of keyLen bytes from the password and salt using
// Argon2i, version 0x13, the purely side-channel-resistant variant.
func IKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	return deriveKey(Argon2i, password, salt, time, memory, threads, keyLen)
}

// IDKey derives a key of keyLen bytes from the password and salt using
// Argon2id, version 0x13. This is the variant RFC 9106 recommends for
// password hashing and the one to use when in doubt.
//
// The time parameter is the number of passes over memory, memory is the
// size in KiB, and threads the parallelism degree. For example, a key
// suitable for AES-256:
//
//	key := argon2.IDKey([]byte("password"), salt, 1, 64*1024, 4, 32)
//
// Like the equivalent golang.org/x/crypto/argon2 helpers, these
// functions panic on invalid cost parameters or a salt shorter than
// MinSaltLen, which are programmer errors; use NewParams and Argon2.Hash
// for validated error returns.
func IDKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	return deriveKey(Argon2id, password, salt, time, memory, threads, keyLen)
}

func deriveKey(algorithm Algorithm, password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	params, err := NewParams(memory, time, uint32(threads), keyLen)
	if err != nil {
		panic(err.Error())
	}

	out := make([]byte, keyLen)
	if err := New(algorithm, Version0x13, params).Hash(password, salt, out); err != nil {
		panic(err.Error())
	}
	return out
}
