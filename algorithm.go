package argon2

import "fmt"

// Algorithm identifies the Argon2 variant. The three variants differ only
// in how reference block indices are chosen during memory filling:
//
//   - Argon2d derives them from block contents (data-dependent). Fastest
//     and most GPU-resistant, but observable through cache timing.
//   - Argon2i derives them from a counter (data-independent), resisting
//     cache-timing side channels at the cost of weaker tradeoff resistance.
//   - Argon2id uses data-independent addressing for the first half of the
//     first pass and data-dependent addressing afterwards. Recommended
//     default per RFC 9106.
type Algorithm uint32

const (
	// Argon2d uses data-dependent addressing throughout.
	Argon2d Algorithm = 0

	// Argon2i uses data-independent addressing throughout.
	Argon2i Algorithm = 1

	// Argon2id is the hybrid of the two, and the recommended default.
	Argon2id Algorithm = 2
)

// String returns the lowercase identifier of the variant, as used in
// PHC hash strings.
func (a Algorithm) String() string {
	switch a {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint32(a))
	}
}
