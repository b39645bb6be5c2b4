package argon2

// addressesInBlock is the number of reference addresses one address
// block provides in data-independent mode before it must be regenerated.
const addressesInBlock = 128

// segmentCursor walks one segment of one lane for one pass, producing
// the (current, previous, reference) block index triple for every
// position it fills. Indices are absolute positions in the memory
// buffer; the fill engine resolves them against the shared []Block, so
// the cursor never holds a block pointer itself.
//
// A cursor is single-use: it is created for one (pass, slice, lane)
// triple, yields exactly the positions of that segment, and is then
// discarded. Cursors for different lanes of the same (pass, slice) touch
// disjoint write ranges and may run concurrently.
type segmentCursor struct {
	params    *Params
	algorithm Algorithm

	pass  uint32
	slice uint32
	lane  uint32

	// b is the position within the segment; prevIndex and curIndex are
	// absolute memory indices, advanced in lockstep with b.
	b         uint32
	prevIndex uint32
	curIndex  uint32

	// Address generation state, used only in data-independent mode.
	// inputBlock word 6 is the counter incremented on every
	// regeneration; addressBlock holds the current page of 128
	// pseudo-random addressing words.
	dataIndependent bool
	addressBlock    Block
	inputBlock      Block
}

// newSegmentCursor positions a cursor at the start of the segment
// identified by (pass, slice, lane).
//
// The very first segment of each lane starts at position 2 because the
// fill engine seeds positions 0 and 1 from the initial hash. A segment
// starting at position 0 of its lane takes the lane's last block as
// "previous"; every other start takes the immediately preceding block.
func newSegmentCursor(params *Params, algorithm Algorithm, pass, slice, lane uint32) *segmentCursor {
	first := uint32(0)
	if pass == 0 && slice == 0 {
		first = 2
	}

	curIndex := lane*params.LaneLength() + slice*params.SegmentLength() + first
	prevIndex := curIndex - 1
	if slice == 0 && first == 0 {
		prevIndex = curIndex + params.LaneLength() - 1
	}

	c := &segmentCursor{
		params:    params,
		algorithm: algorithm,
		pass:      pass,
		slice:     slice,
		lane:      lane,
		b:         first,
		prevIndex: prevIndex,
		curIndex:  curIndex,
	}

	switch algorithm {
	case Argon2i:
		c.dataIndependent = true
	case Argon2id:
		c.dataIndependent = pass == 0 && slice < SyncPoints/2
	}

	if c.dataIndependent {
		c.inputBlock[0] = uint64(pass)
		c.inputBlock[1] = uint64(lane)
		c.inputBlock[2] = uint64(slice)
		c.inputBlock[3] = uint64(params.BlockCount())
		c.inputBlock[4] = uint64(params.TimeCost())
		c.inputBlock[5] = uint64(algorithm)

		// The first segment starts iterating at position 2, past the
		// b%128 == 0 trigger, so its first address page is generated
		// here instead.
		if pass == 0 && slice == 0 {
			c.nextAddresses()
		}
	}

	return c
}

// next yields the memory indices of the next block to fill, its
// predecessor, and its reference block. It reads (but never writes)
// memory: data-dependent addressing takes its randomness from the first
// word of the previous block. ok is false once the segment is exhausted.
func (c *segmentCursor) next(memory []Block) (cur, prev, ref uint32, ok bool) {
	if c.b == c.params.SegmentLength() {
		return 0, 0, 0, false
	}

	cur = c.curIndex
	prev = c.prevIndex

	var rand uint64
	if c.dataIndependent {
		if c.b%addressesInBlock == 0 {
			c.nextAddresses()
		}
		rand = c.addressBlock[c.b%addressesInBlock]
	} else {
		rand = memory[prev][0]
	}

	ref = c.refIndex(rand)

	c.b++
	c.prevIndex = c.curIndex
	c.curIndex++

	return cur, prev, ref, true
}

// nextAddresses generates a fresh page of 128 addressing words by
// incrementing the counter and double-compressing the input block
// against an all-zero block.
func (c *segmentCursor) nextAddresses() {
	var zero Block
	c.inputBlock[6]++
	c.addressBlock = compress(&zero, &c.inputBlock)
	c.addressBlock = compress(&zero, &c.addressBlock)
}

// refIndex maps the 64-bit random value onto an absolute block index,
// per RFC 9106 section 3.4.
//
// The high 32 bits select the reference lane (forced to the current lane
// during the first slice of the first pass, when other lanes hold no
// finished blocks). The low 32 bits select a position within the
// eligible reference area through the quadratic mapping
// area-1 - area*(x*x >> 32) >> 32, which biases references toward
// recently written blocks.
func (c *segmentCursor) refIndex(rand uint64) uint32 {
	segmentLength := c.params.SegmentLength()
	laneLength := c.params.LaneLength()

	refLane := c.lane
	if c.pass != 0 || c.slice != 0 {
		refLane = uint32((rand >> 32) % uint64(c.params.Parallelism()))
	}

	// Count the eligible candidate blocks. On the first pass only the
	// already-written prefix of the lane qualifies; on later passes all
	// but the segment currently being overwritten. The current block's
	// predecessor is excluded when referencing the same lane, and the
	// not-yet-written first block of the slice when referencing another.
	var areaSize uint32
	if c.pass == 0 {
		switch {
		case c.slice == 0:
			areaSize = c.b - 1
		case refLane == c.lane:
			areaSize = c.slice*segmentLength + c.b - 1
		default:
			areaSize = c.slice * segmentLength
			if c.b == 0 {
				areaSize--
			}
		}
	} else {
		if refLane == c.lane {
			areaSize = laneLength - segmentLength + c.b - 1
		} else {
			areaSize = laneLength - segmentLength
			if c.b == 0 {
				areaSize--
			}
		}
	}

	x := rand & 0xFFFFFFFF
	x = (x * x) >> 32
	relativePosition := areaSize - 1 - uint32((uint64(areaSize)*x)>>32)

	// On later passes the reference area wraps: it starts at the oldest
	// surviving segment, the one right after the slice being rewritten.
	var startPosition uint32
	if c.pass != 0 && c.slice != SyncPoints-1 {
		startPosition = (c.slice + 1) * segmentLength
	}

	return refLane*laneLength + (startPosition+relativePosition)%laneLength
}
