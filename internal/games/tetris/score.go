package tetris

// Scoring constants.
const (
	LandingPoints = 10 // awarded for every locked piece
	LinePoints    = 20 // per cleared line
	BonusPoints   = 80 // multiplied by linesCleared/BonusEvery
	BonusEvery    = 4
)

// ScoreTracker accumulates score and the cumulative cleared-line count.
type ScoreTracker struct {
	score        int
	linesCleared int
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// LinesCleared returns the cumulative number of cleared lines.
func (s *ScoreTracker) LinesCleared() int {
	return s.linesCleared
}

// AddLanding records one locked piece.
func (s *ScoreTracker) AddLanding() {
	s.score += LandingPoints
}

// AddLinesCleared records count lines cleared by a single lock.
// Whenever the running total lands on a multiple of BonusEvery, a bonus of
// BonusPoints*(total/BonusEvery) is added; it grows with every crossing.
func (s *ScoreTracker) AddLinesCleared(count int) {
	if count <= 0 {
		return
	}
	s.score += LinePoints * count
	s.linesCleared += count

	if s.linesCleared%BonusEvery == 0 {
		s.score += BonusPoints * (s.linesCleared / BonusEvery)
	}
}

// Reset zeroes both counters.
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.linesCleared = 0
}
