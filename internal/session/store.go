// Package session holds per-session chat transcripts and bookmarks in
// memory. Nothing survives the process.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Chat senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ErrInvalidRating is returned for bookmark ratings outside 1-5.
var ErrInvalidRating = errors.New("session: rating must be between 1 and 5")

// ChatTurn is one message in a session's transcript.
type ChatTurn struct {
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Bookmark is one saved job with the user's rating. Bookmarks are
// append-only and never deduplicated: saving a job twice records it twice.
type Bookmark struct {
	JobTitle string    `json:"job_title"`
	Industry string    `json:"industry"`
	Location string    `json:"location"`
	Rating   int       `json:"rating"`
	At       time.Time `json:"at"`
}

type state struct {
	mu          sync.Mutex
	chatHistory []ChatTurn
	bookmarks   []Bookmark
}

// Store keeps session state isolated by session ID. Sessions are created
// on first touch and discarded only when the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*state)}
}

// NewSession issues a fresh session ID.
func (s *Store) NewSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &state{}
	s.mu.Unlock()
	return id
}

func (s *Store) get(id string) *state {
	s.mu.RLock()
	st, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok = s.sessions[id]; ok {
		return st
	}
	st = &state{}
	s.sessions[id] = st
	return st
}

// AppendChatTurn adds one turn to the session transcript.
func (s *Store) AppendChatTurn(sessionID, sender, message string) {
	st := s.get(sessionID)
	st.mu.Lock()
	st.chatHistory = append(st.chatHistory, ChatTurn{
		Sender:  sender,
		Message: message,
		At:      time.Now(),
	})
	st.mu.Unlock()
}

// AppendBookmark records a bookmarked job after validating the rating.
func (s *Store) AppendBookmark(sessionID string, b Bookmark) error {
	if b.Rating < 1 || b.Rating > 5 {
		return ErrInvalidRating
	}
	if b.At.IsZero() {
		b.At = time.Now()
	}
	st := s.get(sessionID)
	st.mu.Lock()
	st.bookmarks = append(st.bookmarks, b)
	st.mu.Unlock()
	return nil
}

// ChatHistory returns a copy of the session transcript in chronological
// order.
func (s *Store) ChatHistory(sessionID string) []ChatTurn {
	st := s.get(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	history := make([]ChatTurn, len(st.chatHistory))
	copy(history, st.chatHistory)
	return history
}

// Bookmarks returns a copy of the session's bookmark list in insertion
// order.
func (s *Store) Bookmarks(sessionID string) []Bookmark {
	st := s.get(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	bookmarks := make([]Bookmark, len(st.bookmarks))
	copy(bookmarks, st.bookmarks)
	return bookmarks
}
