package storage

import "time"

// HighlightType identifies the kind of darts event being recorded.
type HighlightType string

const (
	TypeOneEighty  HighlightType = "180"
	TypeHighFinish HighlightType = "HIGH_FINISH"
	TypeShortLeg   HighlightType = "SHORT_LEG"
	TypeD1Finish   HighlightType = "D1_FINISH"
	TypeBullFinish HighlightType = "BULL_FINISH"
)

// AllTypes lists the highlight types in the order they are offered for
// selection.
var AllTypes = []HighlightType{
	TypeOneEighty,
	TypeHighFinish,
	TypeShortLeg,
	TypeD1Finish,
	TypeBullFinish,
}

// Known reports whether t is one of the recordable highlight types.
func (t HighlightType) Known() bool {
	for _, k := range AllTypes {
		if t == k {
			return true
		}
	}
	return false
}

// NeedsValue reports whether this highlight type carries a numeric score
// (the finish score or the number of darts in a leg).
func (t HighlightType) NeedsValue() bool {
	return t == TypeHighFinish || t == TypeShortLeg || t == TypeBullFinish
}

// Highlight is a persisted highlight record.
type Highlight struct {
	ID        int64
	Player    string
	Type      HighlightType
	Value     *int
	Comment   *string
	CreatedAt time.Time
}

// NewHighlight carries the fields of a highlight about to be inserted.
// A nil CreatedAt leaves the timestamp to the table default (now).
type NewHighlight struct {
	Player    string
	Type      HighlightType
	Value     *int
	Comment   *string
	CreatedAt *time.Time
}
