package service

import (
	"time"

	"github.com/Andyyyyyy/bats-stats/internal/storage"
)

// ConversationState tracks which field of the draft the admin is being
// asked for. Idle means no free-text input is expected.
type ConversationState int

const (
	StateIdle ConversationState = iota
	StateAwaitingValue
	StateAwaitingComment
	StateAwaitingDate
)

func (s ConversationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingValue:
		return "awaiting_value"
	case StateAwaitingComment:
		return "awaiting_comment"
	case StateAwaitingDate:
		return "awaiting_date"
	default:
		return "unknown"
	}
}

// Draft is the in-progress highlight record being assembled through the
// conversation. Only Player and Type are required for saving.
type Draft struct {
	Player  string
	Type    storage.HighlightType
	Value   *int
	Comment *string
	Date    *time.Time
}

func (d Draft) toRecord() storage.NewHighlight {
	return storage.NewHighlight{
		Player:    d.Player,
		Type:      d.Type,
		Value:     d.Value,
		Comment:   d.Comment,
		CreatedAt: d.Date,
	}
}
