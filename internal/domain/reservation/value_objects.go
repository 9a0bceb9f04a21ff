package reservation

import (
	"strings"
	"time"
)

const MaxPartySize = 20

type TableID struct {
	value string
}

func NewTableID(s string) (TableID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TableID{}, ErrEmptyTableID
	}
	return TableID{value: s}, nil
}

func (t TableID) Value() string {
	return t.value
}

type PartySize struct {
	value int
}

func NewPartySize(v int) (PartySize, error) {
	if v < 1 || v > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: v}, nil
}

func (p PartySize) Value() int {
	return p.value
}

// ReservedAt is the scheduled visit time. Past instants are accepted;
// back-dated bookings simply make the review request due immediately.
type ReservedAt struct {
	value time.Time
}

func NewReservedAt(t time.Time) (ReservedAt, error) {
	if t.IsZero() {
		return ReservedAt{}, ErrMissingReservedAt
	}
	return ReservedAt{value: t}, nil
}

func ReconstructReservedAt(t time.Time) ReservedAt {
	return ReservedAt{value: t}
}

func (r ReservedAt) Value() time.Time {
	return r.value
}

// SameCalendarDay reports whether the visit falls on the given day
// in the given location.
func (r ReservedAt) SameCalendarDay(t time.Time, loc *time.Location) bool {
	y1, m1, d1 := r.value.In(loc).Date()
	y2, m2, d2 := t.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
