package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStreamer replays fixed fragments and then returns err.
type stubStreamer struct {
	fragments []string
	err       error
}

func (s *stubStreamer) StreamMessage(_ context.Context, _ string, onChunk func(string)) error {
	for _, f := range s.fragments {
		onChunk(f)
	}
	return s.err
}

// blockingStreamer signals when the stream opens and holds it until released.
type blockingStreamer struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingStreamer) StreamMessage(_ context.Context, _ string, onChunk func(string)) error {
	close(s.started)
	<-s.release
	onChunk("done")
	return nil
}

func TestSessionSendRejections(t *testing.T) {
	t.Run("blank input is a no-op", func(t *testing.T) {
		session := NewSession(&stubStreamer{fragments: []string{"never"}})

		require.ErrorIs(t, session.Send(context.Background(), "", nil), ErrEmptyMessage)
		require.ErrorIs(t, session.Send(context.Background(), "   \t\n", nil), ErrEmptyMessage)

		history := session.History()
		require.Len(t, history, 1, "history must stay at the greeting")
		assert.Equal(t, Greeting, history[0].Text)
	})

	t.Run("send while awaiting a response is rejected", func(t *testing.T) {
		streamer := &blockingStreamer{
			started: make(chan struct{}),
			release: make(chan struct{}),
		}
		session := NewSession(streamer)

		firstDone := make(chan error, 1)
		go func() {
			firstDone <- session.Send(context.Background(), "first", nil)
		}()

		<-streamer.started
		err := session.Send(context.Background(), "second", nil)
		assert.ErrorIs(t, err, ErrBusy)

		close(streamer.release)
		require.NoError(t, <-firstDone)

		// Only the first exchange made it into the history.
		history := session.History()
		require.Len(t, history, 3)
		assert.Equal(t, "first", history[1].Text)
		assert.Equal(t, "done", history[2].Text)
	})
}

func TestSessionSendStreaming(t *testing.T) {
	session := NewSession(&stubStreamer{fragments: []string{"Hel", "lo ", "there."}})

	var observed []string
	err := session.Send(context.Background(), "Draft a greeting", func(fragment string) {
		observed = append(observed, fragment)
	})
	require.NoError(t, err)

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, RoleUser, history[1].Role)
	assert.Equal(t, "Draft a greeting", history[1].Text)
	assert.Equal(t, RoleModel, history[2].Role)
	assert.Equal(t, "Hello there.", history[2].Text, "fragments accumulate on the placeholder")
	assert.Equal(t, []string{"Hel", "lo ", "there."}, observed)
}

func TestSessionSendFailure(t *testing.T) {
	session := NewSession(&stubStreamer{
		fragments: []string{"partial "},
		err:       errors.New("upstream closed"),
	})

	// Stream failures never propagate to the caller.
	require.NoError(t, session.Send(context.Background(), "Hello", nil))

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, "partial "+ErrorMessage, history[2].Text)

	// The session returned to idle: a new send is accepted.
	require.NoError(t, session.Send(context.Background(), "again", nil))
	assert.Len(t, session.History(), 5)
}

func TestSessionUnavailable(t *testing.T) {
	session := NewSession(Unavailable{})

	require.NoError(t, session.Send(context.Background(), "Hello", nil))

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, RoleModel, history[2].Role)
	assert.Equal(t, UnavailableMessage, history[2].Text)

	// Every send degrades the same way while the key is missing.
	require.NoError(t, session.Send(context.Background(), "Still there?", nil))
	history = session.History()
	require.Len(t, history, 5)
	assert.Equal(t, UnavailableMessage, history[4].Text)
}

func TestGreetingOpensHistory(t *testing.T) {
	session := NewSession(&stubStreamer{})
	history := session.History()
	require.Len(t, history, 1)
	assert.Equal(t, RoleModel, history[0].Role)
	assert.True(t, strings.HasPrefix(history[0].Text, "Hello!"))
}
