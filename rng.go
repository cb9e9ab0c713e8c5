package deltarcm

import (
	"encoding/binary"
	"fmt"
)

// Stream is the seedable pseudorandom source shared by the routing samplers.
// The generator is a SplitMix64: the whole generator state is one 64-bit
// word, which keeps checkpoint snapshots trivial and sub-stream derivation
// cheap. Stream satisfies math/rand's Source64 so it can also drive rand.New
// consumers.
//
// A Stream is not safe for concurrent use; concurrent routing derives one
// sub-stream per parcel instead (see SubStream).
type Stream struct {
	state uint64
}

// NewStream returns a stream deterministically initialized from seed.
func NewStream(seed int64) *Stream {
	return &Stream{state: uint64(seed)}
}

// Seed reinitializes the stream; all subsequent draws are a deterministic
// function of seed and draw order.
func (s *Stream) Seed(seed int64) { s.state = uint64(seed) }

// Uint64 advances the generator by one draw.
func (s *Stream) Uint64() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Int63 satisfies math/rand.Source.
func (s *Stream) Int63() int64 { return int64(s.Uint64() >> 1) }

// Uniform returns one draw in [0,1).
func (s *Stream) Uniform() float64 { return float64(s.Uint64()>>11) / (1 << 53) }

// SubStream derives an independent stream for parcel k. Draws from a
// sub-stream are reproducible given the parent seed and k, but do not match
// the draw order of a serial run on the parent stream.
func (s *Stream) SubStream(k int) *Stream {
	child := &Stream{state: s.state ^ (uint64(k)+1)*0xA3EC647659359ACD}
	child.Uint64() // decorrelate from the parent word
	return child
}

const streamMagic uint32 = 0x44524e47 // "DRNG"

// GetState captures the generator state as an opaque snapshot for
// checkpointing. The snapshot is only meaningful to SetState.
func (s *Stream) GetState() []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[:4], streamMagic)
	binary.LittleEndian.PutUint64(b[4:], s.state)
	return b
}

// SetState restores a snapshot taken by GetState. A malformed snapshot is
// rejected before any draw can occur.
func (s *Stream) SetState(snapshot []byte) error {
	if len(snapshot) != 12 {
		return fmt.Errorf("Stream.SetState: malformed snapshot: %d bytes", len(snapshot))
	}
	if binary.LittleEndian.Uint32(snapshot[:4]) != streamMagic {
		return fmt.Errorf("Stream.SetState: unrecognized snapshot header")
	}
	s.state = binary.LittleEndian.Uint64(snapshot[4:])
	return nil
}
