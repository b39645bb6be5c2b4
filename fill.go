package argon2

import (
	"encoding/binary"
	"sync"
)

// fillMemory seeds the first two blocks of every lane from the initial
// hash and then runs the full pass/slice/lane schedule over the buffer.
// The buffer length is validated before anything is written.
func (a *Argon2) fillMemory(memory []Block, h0 []byte) error {
	if len(memory) != a.params.BlockCount() {
		return ErrMemoryLength
	}

	if err := a.initBlocks(memory, h0); err != nil {
		return err
	}

	// Passes and slices are strictly ordered: a block may reference
	// another lane only within slices that are fully written, so each
	// slice is a synchronization point.
	for pass := uint32(0); pass < a.params.TimeCost(); pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			a.fillSlice(memory, pass, slice)
		}
	}

	return nil
}

// initBlocks derives blocks 0 and 1 of each lane by stretching
// H0 || le32(block) || le32(lane) to the block size.
func (a *Argon2) initBlocks(memory []Block, h0 []byte) error {
	laneLength := a.params.LaneLength()

	var buf [BlockSize]byte
	var block, lane [4]byte

	for l := uint32(0); l < a.params.Parallelism(); l++ {
		binary.LittleEndian.PutUint32(lane[:], l)
		for i := uint32(0); i < 2; i++ {
			binary.LittleEndian.PutUint32(block[:], i)
			if err := blake2bLong(buf[:], h0, block[:], lane[:]); err != nil {
				return err
			}
			memory[l*laneLength+i].fromBytes(buf[:])
		}
	}

	return nil
}

// fillSlice fills one slice of every lane. Lanes write disjoint block
// ranges and read only finished slices, so they run concurrently when
// there is more than one. Sequential and concurrent execution produce
// identical memory.
func (a *Argon2) fillSlice(memory []Block, pass, slice uint32) {
	lanes := a.params.Parallelism()
	if lanes == 1 {
		a.fillSegment(memory, pass, slice, 0)
		return
	}

	var wg sync.WaitGroup
	for lane := uint32(0); lane < lanes; lane++ {
		wg.Add(1)
		go func(lane uint32) {
			defer wg.Done()
			a.fillSegment(memory, pass, slice, lane)
		}(lane)
	}
	wg.Wait()
}

// fillSegment drives one segment cursor, compressing the previous and
// reference block into each position. The first pass and version 0x10
// overwrite; later passes under version 0x13 XOR-accumulate, preserving
// the previous pass's contribution.
func (a *Argon2) fillSegment(memory []Block, pass, slice, lane uint32) {
	cursor := newSegmentCursor(&a.params, a.algorithm, pass, slice, lane)

	for {
		cur, prev, ref, ok := cursor.next(memory)
		if !ok {
			return
		}

		result := compress(&memory[prev], &memory[ref])

		if a.version == Version0x10 || pass == 0 {
			memory[cur] = result
		} else {
			memory[cur].XOR(&result)
		}
	}
}

// finalize folds the last block of every lane into one and stretches it
// to the requested output length.
func (a *Argon2) finalize(memory []Block, out []byte) error {
	laneLength := a.params.LaneLength()

	blockhash := memory[laneLength-1]
	for l := uint32(1); l < a.params.Parallelism(); l++ {
		blockhash.XOR(&memory[l*laneLength+laneLength-1])
	}

	err := blake2bLong(out, blockhash.Bytes())
	blockhash.Zero()
	return err
}
