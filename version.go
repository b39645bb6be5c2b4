package argon2

import "fmt"

// Version identifies the Argon2 algorithm revision. The two published
// versions differ only in how blocks are combined on passes after the
// first: version 0x10 overwrites the destination block, version 0x13
// XORs the compression result into it.
type Version uint32

const (
	// Version0x10 is the original Argon2 release (v1.0).
	Version0x10 Version = 0x10

	// Version0x13 is the current revision (v1.3), standardized in
	// RFC 9106. Use this unless interoperating with legacy hashes.
	Version0x13 Version = 0x13
)

// DefaultVersion is the version used when none is specified.
const DefaultVersion = Version0x13

// String returns the decimal form of the version, as used in PHC hash
// strings (e.g. "19" for 0x13).
func (v Version) String() string {
	return fmt.Sprintf("%d", uint32(v))
}
