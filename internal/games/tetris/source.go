package tetris

import (
	"math/rand"
	"time"
)

// PieceSource supplies the type of each new piece.
type PieceSource interface {
	Next() PieceType
}

// RandSource draws piece types uniformly, with replacement.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a seeded random source.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random piece type.
func (s *RandSource) Next() PieceType {
	return AllPieces[s.rng.Intn(len(AllPieces))]
}

// SequenceSource replays a fixed list of piece types, cycling when exhausted.
type SequenceSource struct {
	seq []PieceType
	pos int
}

// NewSequenceSource creates a source that yields types in order.
// An empty sequence yields PieceI forever.
func NewSequenceSource(types ...PieceType) *SequenceSource {
	return &SequenceSource{seq: types}
}

// Next returns the next type in the sequence.
func (s *SequenceSource) Next() PieceType {
	if len(s.seq) == 0 {
		return PieceI
	}
	t := s.seq[s.pos%len(s.seq)]
	s.pos++
	return t
}

func defaultSource() PieceSource {
	return NewRandSource(time.Now().UnixNano())
}
