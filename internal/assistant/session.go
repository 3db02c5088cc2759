package assistant

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Streamer opens a streaming completion request and delivers the response
// text incrementally through onChunk. A stream is finite and not restartable.
type Streamer interface {
	StreamMessage(ctx context.Context, message string, onChunk func(string)) error
}

const (
	// Greeting opens every new session.
	Greeting = "Hello! I am your AI HR Assistant. How can I help you today? You can ask me to draft job descriptions, provide interview questions, or answer HR policy questions."
	// UnavailableMessage is returned for every send when no API key is configured.
	UnavailableMessage = "AI service is unavailable. Please configure the API key."
	// ErrorMessage replaces the pending reply when the stream fails.
	ErrorMessage = "Sorry, I encountered an error. Please try again."
)

var (
	ErrEmptyMessage = errors.New("assistant: empty message")
	ErrBusy         = errors.New("assistant: response in progress")
)

// Session holds a linear chat history and streams one reply at a time. While
// a reply is in flight, further sends are rejected; there is no cancellation
// or timeout, a stream runs to completion or failure.
type Session struct {
	mu       sync.Mutex
	streamer Streamer
	history  []Message
	busy     bool
}

func NewSession(streamer Streamer) *Session {
	return &Session{
		streamer: streamer,
		history:  []Message{{Role: RoleModel, Text: Greeting}},
	}
}

// History returns a copy of the message history.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}

// Send appends the user message plus an empty model placeholder, then blocks
// while response fragments accumulate on the placeholder. Blank input and a
// send during an in-flight reply are rejected without touching the history.
// Stream failures do not propagate: the placeholder is filled with
// ErrorMessage instead. onFragment, if non-nil, observes each delivered
// fragment.
func (s *Session) Send(ctx context.Context, text string, onFragment func(string)) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.history = append(s.history,
		Message{Role: RoleUser, Text: text},
		Message{Role: RoleModel, Text: ""},
	)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	err := s.streamer.StreamMessage(ctx, text, func(chunk string) {
		if s.appendToReply(chunk) && onFragment != nil {
			onFragment(chunk)
		}
	})
	if err != nil {
		log.Printf("[Assistant] stream failed: %v", err)
		if s.appendToReply(ErrorMessage) && onFragment != nil {
			onFragment(ErrorMessage)
		}
	}
	return nil
}

// appendToReply appends a fragment to the last message only when that
// message has the model role. Anything else means the history is not in the
// expected shape and the fragment is dropped rather than written onto a
// wrong message.
func (s *Session) appendToReply(chunk string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return false
	}
	last := &s.history[len(s.history)-1]
	if last.Role != RoleModel {
		return false
	}
	last.Text += chunk
	return true
}

// Unavailable is the Streamer used when no API credential is configured: it
// answers every message with the fixed unavailable notice.
type Unavailable struct{}

func (Unavailable) StreamMessage(_ context.Context, _ string, onChunk func(string)) error {
	onChunk(UnavailableMessage)
	return nil
}
