package review

import "strings"

const (
	MinBodyLength = 10
	MaxBodyLength = 1000
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 1 || v > 5 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Scores groups the three rated aspects of a visit.
type Scores struct {
	quality  Score
	service  Score
	ambiance Score
}

func NewScores(quality, service, ambiance int) (Scores, error) {
	q, err := NewScore(quality)
	if err != nil {
		return Scores{}, err
	}
	s, err := NewScore(service)
	if err != nil {
		return Scores{}, err
	}
	a, err := NewScore(ambiance)
	if err != nil {
		return Scores{}, err
	}
	return Scores{quality: q, service: s, ambiance: a}, nil
}

func (s Scores) Quality() int  { return s.quality.value }
func (s Scores) Service() int  { return s.service.value }
func (s Scores) Ambiance() int { return s.ambiance.value }

// Overall is the arithmetic mean of the three scores, unrounded.
func (s Scores) Overall() float64 {
	return float64(s.quality.value+s.service.value+s.ambiance.value) / 3.0
}

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	t := strings.TrimSpace(s)
	if len(t) < MinBodyLength {
		return Body{}, ErrBodyTooShort
	}
	if len(t) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: t}, nil
}

func (b Body) String() string { return b.text }
