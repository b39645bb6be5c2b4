package argon2

import "testing"

func testBlock(seed uint64) Block {
	var b Block
	x := seed
	for i := range b {
		// splitmix64 step, good enough for test fixtures
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		b[i] = z ^ (z >> 31)
	}
	return b
}

// TestCompress_Pure verifies compress never writes its inputs.
func TestCompress_Pure(t *testing.T) {
	a, b := testBlock(1), testBlock(2)
	aCopy, bCopy := a, b

	_ = compress(&a, &b)

	if a != aCopy || b != bCopy {
		t.Fatal("compress modified an input block")
	}
}

// TestCompress_Deterministic verifies repeated calls agree.
func TestCompress_Deterministic(t *testing.T) {
	a, b := testBlock(3), testBlock(4)

	if compress(&a, &b) != compress(&a, &b) {
		t.Fatal("compress is not deterministic")
	}
}

// TestCompress_Symmetric verifies argument order does not matter: the
// permutation runs over the XOR of the inputs, which commutes.
func TestCompress_Symmetric(t *testing.T) {
	a, b := testBlock(5), testBlock(6)

	if compress(&a, &b) != compress(&b, &a) {
		t.Fatal("compress(a, b) != compress(b, a)")
	}
}

// TestCompress_NotIdentity verifies the result differs from the plain
// XOR of the inputs (i.e. the permutation actually contributes).
func TestCompress_NotIdentity(t *testing.T) {
	a, b := testBlock(7), testBlock(8)

	out := compress(&a, &b)

	var plain Block
	for i := range plain {
		plain[i] = a[i] ^ b[i]
	}

	if out == plain {
		t.Fatal("compress degenerated to XOR of inputs")
	}
}

// TestCompress_Avalanche verifies a single flipped input bit changes
// nearly every output word.
func TestCompress_Avalanche(t *testing.T) {
	a, b := testBlock(9), testBlock(10)

	base := compress(&a, &b)

	a[0] ^= 1
	flipped := compress(&a, &b)

	differing := 0
	for i := range base {
		if base[i] != flipped[i] {
			differing++
		}
	}

	if differing < blockWords/2 {
		t.Fatalf("only %d of %d words changed after a one-bit flip", differing, blockWords)
	}
}

// TestCompress_ZeroInputs pins the degenerate all-zero case: the output
// must still be non-zero (P(0) == 0 would be a broken permutation here,
// since fBlaMka has no additive constants; the double-compress address
// generation relies on the counter word to break this).
func TestCompress_ZeroInputs(t *testing.T) {
	var a, b Block

	out := compress(&a, &b)

	// P over the all-zero state is all-zero (fBlaMka(0,0) == 0), so the
	// result of compress(0, 0) is exactly zero. Pin that down: the fill
	// schedule never compresses two zero blocks, but the address
	// generator feeds a counter word precisely to avoid this fixed point.
	if out != a {
		t.Fatal("compress(0, 0) expected to be the zero block")
	}
}

// TestPermute_InvertibleShape verifies permute changes a non-degenerate
// state and is deterministic over it.
func TestPermute_InvertibleShape(t *testing.T) {
	src := testBlock(11)

	v1 := make([]uint64, 16)
	v2 := make([]uint64, 16)
	copy(v1, src[:16])
	copy(v2, src[:16])

	permute(v1)
	permute(v2)

	same := true
	for i := range v1 {
		if v1[i] != src[i] {
			same = false
		}
		if v1[i] != v2[i] {
			t.Fatal("permute is not deterministic")
		}
	}
	if same {
		t.Fatal("permute left the state unchanged")
	}
}

// TestBlamka_KnownRelations pins fBlaMka against hand-computed values.
func TestBlamka_KnownRelations(t *testing.T) {
	tests := []struct {
		x, y, want uint64
	}{
		{0, 0, 0},
		{1, 1, 4},                    // 1 + 1 + 2*1*1
		{1 << 32, 1 << 32, 1 << 33},  // high halves do not multiply
		{0xFFFFFFFF, 1, 0x2FFFFFFFE}, // 2^32-1 + 1 + 2*(2^32-1)
	}

	for _, tt := range tests {
		if got := fBlaMka(tt.x, tt.y); got != tt.want {
			t.Errorf("fBlaMka(%#x, %#x) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestRotr64 verifies the rotation helper.
func TestRotr64(t *testing.T) {
	if got := rotr64(1, 1); got != 1<<63 {
		t.Errorf("rotr64(1, 1) = %#x, want %#x", got, uint64(1)<<63)
	}
	if got := rotr64(0x123456789abcdef0, 64-8); got != 0x3456789abcdef012 {
		t.Errorf("rotr64 by 56 = %#x", got)
	}
}
