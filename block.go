package argon2

import "encoding/binary"

const (
	// BlockSize is the size of an Argon2 memory block in bytes.
	BlockSize = 1024

	// blockWords is the number of 64-bit words in a block (1024 / 8).
	blockWords = 128
)

// Block is a 1024-byte Argon2 memory block, viewed as 128 little-endian
// 64-bit words. Blocks have no identity of their own; a block is defined
// entirely by its position in the memory buffer.
type Block [blockWords]uint64

// XOR accumulates other into b word by word. Used to fold compression
// results into already-filled blocks on passes after the first, and to
// combine the final block of every lane during finalization.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Zero clears the block. Best-effort cleanup for key-derived material;
// callers that supply their own memory are responsible for their buffer.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// Bytes returns the block serialized as BlockSize little-endian bytes.
func (b *Block) Bytes() []byte {
	data := make([]byte, BlockSize)
	for i := 0; i < blockWords; i++ {
		binary.LittleEndian.PutUint64(data[i*8:], b[i])
	}
	return data
}

// fromBytes loads the block from exactly BlockSize little-endian bytes.
func (b *Block) fromBytes(data []byte) {
	_ = data[BlockSize-1]
	for i := 0; i < blockWords; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
}
