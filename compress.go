package argon2

// compress is the Argon2 compression function G. It XORs the two input
// blocks, runs the BlaMka permutation over the result (one pass over the
// eight 16-word rows, then one pass over the eight column pairs), and
// XORs the permuted state back into the pre-permutation XOR.
//
// compress is pure: prev and ref are never written. How the result is
// combined into memory (overwrite on the first pass and for version
// 0x10, XOR-accumulate otherwise) is the fill engine's business.
func compress(prev, ref *Block) Block {
	var r Block
	for i := range r {
		r[i] = prev[i] ^ ref[i]
	}

	q := r

	// Rows: 16 consecutive words each.
	for i := 0; i < blockWords; i += 16 {
		permute(q[i : i+16])
	}

	// Columns: word pairs at stride 16, gathered into a contiguous
	// 16-word state and scattered back.
	var w [16]uint64
	for i := 0; i < 16; i += 2 {
		for j := 0; j < 8; j++ {
			w[2*j] = q[16*j+i]
			w[2*j+1] = q[16*j+i+1]
		}
		permute(w[:])
		for j := 0; j < 8; j++ {
			q[16*j+i] = w[2*j]
			q[16*j+i+1] = w[2*j+1]
		}
	}

	r.XOR(&q)
	return r
}

// permute applies the Argon2 permutation P to a 16-word state: the
// Blake2b round pattern (column step, then diagonal step) built on the
// BlaMka mixing function instead of plain addition.
func permute(v []uint64) {
	v[0], v[4], v[8], v[12] = blamka(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = blamka(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = blamka(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = blamka(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = blamka(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = blamka(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = blamka(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = blamka(v[3], v[4], v[9], v[14])
}

// blamka is the Blake2b G function with each addition replaced by the
// multiplication-hardened a + b + 2*lo32(a)*lo32(b) step, per RFC 9106
// section 3.6. The rotation schedule (32, 24, 16, 63) is unchanged.
func blamka(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)

	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// fBlaMka computes x + y + 2 * lo32(x) * lo32(y) modulo 2^64.
func fBlaMka(x, y uint64) uint64 {
	return x + y + 2*(x&0xFFFFFFFF)*(y&0xFFFFFFFF)
}

// rotr64 rotates x right by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
