package argon2

import "errors"

// All failures are reported through one of the sentinel errors below.
// None of them is retryable: each indicates an input or configuration
// the algorithm rejects up front, before any memory is written.
var (
	// ErrOutputTooShort is returned when the requested output is shorter
	// than the minimum (or the fixed length configured in Params).
	ErrOutputTooShort = errors.New("argon2: output is too short")

	// ErrOutputTooLong is returned when the requested output exceeds the
	// maximum (or the fixed length configured in Params).
	ErrOutputTooLong = errors.New("argon2: output is too long")

	// ErrPasswordTooLong is returned when the password exceeds 2^32-1 bytes.
	ErrPasswordTooLong = errors.New("argon2: password is too long")

	// ErrSaltTooShort is returned when the salt is shorter than MinSaltLen.
	ErrSaltTooShort = errors.New("argon2: salt is too short")

	// ErrSaltTooLong is returned when the salt exceeds 2^32-1 bytes.
	ErrSaltTooLong = errors.New("argon2: salt is too long")

	// ErrSecretTooLong is returned when the secret exceeds 2^32-1 bytes.
	ErrSecretTooLong = errors.New("argon2: secret is too long")

	// ErrAdTooLong is returned when the associated data exceeds 2^32-1 bytes.
	ErrAdTooLong = errors.New("argon2: associated data is too long")

	// ErrKeyIDTooLong is returned when the key identifier exceeds
	// MaxKeyIDLen bytes.
	ErrKeyIDTooLong = errors.New("argon2: key identifier is too long")

	// ErrTimeTooSmall is returned when the time cost is below MinTimeCost.
	ErrTimeTooSmall = errors.New("argon2: time cost is too small")

	// ErrLanesTooFew is returned when the parallelism degree is zero.
	ErrLanesTooFew = errors.New("argon2: too few lanes")

	// ErrLanesTooMany is returned when the parallelism degree exceeds
	// MaxParallelism.
	ErrLanesTooMany = errors.New("argon2: too many lanes")

	// ErrMemoryTooLittle is returned when the memory cost is below the
	// minimum of 8 blocks per lane.
	ErrMemoryTooLittle = errors.New("argon2: memory cost is too small")

	// ErrMemoryLength is returned when a caller-supplied block buffer does
	// not have exactly Params.BlockCount elements. It is reported before
	// any block is written.
	ErrMemoryLength = errors.New("argon2: memory buffer length does not match block count")
)
