package argon2

// Cost parameter bounds per RFC 9106.
const (
	// SyncPoints is the number of slices per pass. Slices are
	// synchronization points: a block may reference other lanes only
	// within slices that are already complete.
	SyncPoints = 4

	// MinTimeCost is the minimum number of passes over memory.
	MinTimeCost = 1

	// MaxParallelism is the maximum number of lanes (2^24 - 1).
	MaxParallelism = 0xFFFFFF

	// MinOutputLen is the minimum digest length in bytes.
	MinOutputLen = 4

	// MaxOutputLen is the maximum digest length in bytes (2^32 - 1).
	MaxOutputLen = 0xFFFFFFFF

	// MaxKeyIDLen is the maximum key identifier length in bytes.
	MaxKeyIDLen = 64

	// MaxAssociatedDataLen is the maximum associated data length in
	// bytes (2^32 - 1).
	MaxAssociatedDataLen = 0xFFFFFFFF
)

// Default cost parameters: 19 MiB of memory, 2 passes, 1 lane. This is
// the second recommended option of RFC 9106 section 4, suitable for
// environments that cannot spare the first option's 2 GiB.
const (
	DefaultMemoryCost  = 19 * 1024
	DefaultTimeCost    = 2
	DefaultParallelism = 1
	DefaultOutputLen   = 32
)

// Params holds the validated Argon2 cost parameters and the memory
// geometry derived from them. Construct with NewParams; a zero Params is
// not valid. Once built, a Params is immutable and safe to share.
//
// Memory is organized as pCost lanes of laneLength 1 KiB blocks, each
// lane split into SyncPoints segments. The requested memory cost is
// rounded down to a multiple of SyncPoints*pCost blocks so the geometry
// divides evenly.
type Params struct {
	// mCost is the memory size in KiB (= blocks before rounding).
	mCost uint32

	// tCost is the number of passes over the whole memory region.
	tCost uint32

	// pCost is the parallelism degree (number of lanes).
	pCost uint32

	// outputLen, when non-zero, pins the digest to exactly this length.
	// Zero allows any length within [MinOutputLen, MaxOutputLen].
	outputLen uint32

	// segmentLength is the derived number of blocks per segment.
	segmentLength uint32

	keyID []byte
	data  []byte
}

// NewParams validates the cost parameters and derives the memory
// geometry. outputLen of 0 leaves the digest length flexible; a non-zero
// value requires every hash call to request exactly that many bytes.
func NewParams(memoryCost, timeCost, parallelism, outputLen uint32) (Params, error) {
	if timeCost < MinTimeCost {
		return Params{}, ErrTimeTooSmall
	}

	if parallelism < 1 {
		return Params{}, ErrLanesTooFew
	}
	if parallelism > MaxParallelism {
		return Params{}, ErrLanesTooMany
	}

	// Each lane needs at least two seed blocks per segment.
	if memoryCost < 2*SyncPoints*parallelism {
		return Params{}, ErrMemoryTooLittle
	}

	if outputLen != 0 && outputLen < MinOutputLen {
		return Params{}, ErrOutputTooShort
	}

	return Params{
		mCost:         memoryCost,
		tCost:         timeCost,
		pCost:         parallelism,
		outputLen:     outputLen,
		segmentLength: memoryCost / (parallelism * SyncPoints),
	}, nil
}

// DefaultParams returns the RFC 9106 second recommended parameter set.
func DefaultParams() Params {
	p, err := NewParams(DefaultMemoryCost, DefaultTimeCost, DefaultParallelism, DefaultOutputLen)
	if err != nil {
		panic("argon2: invalid default params: " + err.Error())
	}
	return p
}

// WithAssociatedData returns a copy of p carrying associated data, which
// is folded into the initial hash and therefore into every digest.
func (p Params) WithAssociatedData(data []byte) (Params, error) {
	if uint64(len(data)) > MaxAssociatedDataLen {
		return Params{}, ErrAdTooLong
	}
	p.data = append([]byte(nil), data...)
	return p, nil
}

// WithKeyID returns a copy of p carrying a key identifier. The key ID is
// bookkeeping for callers managing multiple secrets; it does not enter
// the hash computation.
func (p Params) WithKeyID(keyID []byte) (Params, error) {
	if len(keyID) > MaxKeyIDLen {
		return Params{}, ErrKeyIDTooLong
	}
	p.keyID = append([]byte(nil), keyID...)
	return p, nil
}

// MemoryCost returns the requested memory size in KiB.
func (p *Params) MemoryCost() uint32 { return p.mCost }

// TimeCost returns the number of passes over memory.
func (p *Params) TimeCost() uint32 { return p.tCost }

// Parallelism returns the number of lanes.
func (p *Params) Parallelism() uint32 { return p.pCost }

// OutputLen returns the fixed digest length in bytes, or 0 when the
// length is flexible.
func (p *Params) OutputLen() uint32 { return p.outputLen }

// AssociatedData returns the associated data, or nil.
func (p *Params) AssociatedData() []byte { return p.data }

// KeyID returns the key identifier, or nil.
func (p *Params) KeyID() []byte { return p.keyID }

// SegmentLength returns the number of blocks per segment.
func (p *Params) SegmentLength() uint32 { return p.segmentLength }

// LaneLength returns the number of blocks per lane, always a multiple
// of SyncPoints.
func (p *Params) LaneLength() uint32 { return p.segmentLength * SyncPoints }

// BlockCount returns the total number of blocks a hash operation uses,
// which is exactly the length of the buffer HashWithMemory and
// FillMemory require.
func (p *Params) BlockCount() int { return int(p.LaneLength() * p.pCost) }
