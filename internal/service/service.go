package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Andyyyyyy/bats-stats/internal/storage"
)

var (
	// Recoverable input errors: the draft stays untouched and the same
	// step is prompted again.
	ErrInvalidValue   = errors.New("value is not a number")
	ErrCommentTooLong = errors.New("comment too long (>200 characters)")
	ErrInvalidDate    = errors.New("date must be a valid YYYY-MM-DD")

	// ErrEmptyName is returned by /addname with no argument.
	ErrEmptyName = errors.New("player name is empty")

	// Save attempted on an incomplete draft. The draft is kept so the
	// admin can fill in the missing field and retry.
	ErrMissingPlayer = errors.New("missing player")
	ErrMissingType   = errors.New("missing highlight type")

	// ErrNoActiveDraft means free text arrived while no field was being
	// awaited. The caller ignores it.
	ErrNoActiveDraft = errors.New("no active draft")
)

// StorageError wraps a failed insert so callers can tell a storage outage
// apart from user mistakes.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("database insert failed: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storer is the persistence surface the highlight service needs.
type Storer interface {
	InsertHighlight(ctx context.Context, n storage.NewHighlight) (int64, error)
	DistinctPlayers(ctx context.Context) ([]string, error)
}

// Highlighter is the service surface the Telegram handler depends on.
type Highlighter interface {
	Begin() []string
	ChoosePlayer(name string) Draft
	ChooseType(t storage.HighlightType) (ConversationState, Draft)
	SubmitText(ctx context.Context, text string) (StepResult, error)
	Finish(ctx context.Context) (StepResult, error)
	AddPlayer(name string) error
	Players() []string
}

// StepResult describes the conversation after a transition: the state the
// machine moved to, a snapshot of the draft for echoing back, and the id
// when the step ended in a save.
type StepResult struct {
	State ConversationState
	Draft Draft
	Saved bool
	ID    int64
}

// HighlightService owns the single conversation session: one draft and one
// state, guarded by a mutex. There is exactly one admin, so there is never
// more than one draft in flight.
type HighlightService struct {
	storage  Storer
	registry *Registry

	mu    sync.Mutex
	draft Draft
	state ConversationState
}

func New(store Storer, seedPlayers []string) *HighlightService {
	return &HighlightService{
		storage:  store,
		registry: NewRegistry(seedPlayers),
	}
}

// LoadPlayers merges the distinct player names already in storage into the
// registry. Called once at startup.
func (s *HighlightService) LoadPlayers(ctx context.Context) error {
	names, err := s.storage.DistinctPlayers(ctx)
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}
	s.registry.AddAll(names)
	return nil
}

// AddPlayer registers a new player name via /addname.
func (s *HighlightService) AddPlayer(name string) error {
	return s.registry.Add(name)
}

// Players returns the registry contents for presentation.
func (s *HighlightService) Players() []string {
	return s.registry.List()
}

// Begin starts a fresh draft, discarding any previous one, and returns the
// player names to offer as buttons.
func (s *HighlightService) Begin() []string {
	s.mu.Lock()
	s.draft = Draft{}
	s.state = StateIdle
	s.mu.Unlock()

	return s.registry.List()
}

// ChoosePlayer records the selected player on the draft.
func (s *HighlightService) ChoosePlayer(name string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Player = name
	return s.draft
}

// ChooseType records the selected highlight type and moves to the next
// step: types that carry a score await a value, the rest go straight to
// the comment.
func (s *HighlightService) ChooseType(t storage.HighlightType) (ConversationState, Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Type = t
	if t.NeedsValue() {
		s.state = StateAwaitingValue
	} else {
		s.state = StateAwaitingComment
	}
	return s.state, s.draft
}

// SubmitText feeds admin free text into the current step. Invalid input
// returns one of the validation errors and leaves draft and state alone;
// a valid date triggers the save immediately.
func (s *HighlightService) SubmitText(ctx context.Context, text string) (StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAwaitingValue:
		v, err := parseValue(text)
		if err != nil {
			return StepResult{State: s.state, Draft: s.draft}, err
		}
		s.draft.Value = &v
		s.state = StateAwaitingComment

	case StateAwaitingComment:
		c, err := parseComment(text)
		if err != nil {
			return StepResult{State: s.state, Draft: s.draft}, err
		}
		s.draft.Comment = &c
		s.state = StateAwaitingDate

	case StateAwaitingDate:
		d, err := parseDate(text)
		if err != nil {
			return StepResult{State: s.state, Draft: s.draft}, err
		}
		s.draft.Date = &d
		s.state = StateIdle
		return s.saveLocked(ctx)

	default:
		return StepResult{State: s.state}, ErrNoActiveDraft
	}

	return StepResult{State: s.state, Draft: s.draft}, nil
}

// Finish saves the draft as-is, skipping any remaining optional fields.
func (s *HighlightService) Finish(ctx context.Context) (StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	return s.saveLocked(ctx)
}

// State exposes the current conversation state (used in tests).
func (s *HighlightService) State() ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentDraft returns a snapshot of the in-progress draft.
func (s *HighlightService) CurrentDraft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// saveLocked persists the draft. On success the draft is cleared; on
// failure it is kept so an immediate /done retries the same record without
// re-entering anything. Caller must hold s.mu.
func (s *HighlightService) saveLocked(ctx context.Context) (StepResult, error) {
	res := StepResult{State: s.state, Draft: s.draft}

	if s.draft.Player == "" {
		return res, ErrMissingPlayer
	}
	if s.draft.Type == "" {
		return res, ErrMissingType
	}

	id, err := s.storage.InsertHighlight(ctx, s.draft.toRecord())
	if err != nil {
		return res, &StorageError{Err: err}
	}

	s.draft = Draft{}
	res.Saved = true
	res.ID = id
	return res, nil
}
