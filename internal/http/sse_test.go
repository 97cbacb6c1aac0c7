package http

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// countingFlusher records flushes and can cancel a context after n of them.
type countingFlusher struct {
	flushes int
	cancel  func()
	after   int
}

func (f *countingFlusher) Flush() {
	f.flushes++
	if f.cancel != nil && f.flushes == f.after {
		f.cancel()
	}
}

func TestStreamDeltasFraming(t *testing.T) {
	var buf bytes.Buffer
	fl := &countingFlusher{}
	ew := &eventWriter{w: &buf, flusher: fl}

	err := streamDeltas(context.Background(), ew, []string{"abc", `d"<e>`}, 0)
	require.NoError(t, err)

	assert.Equal(t, ": connected\n\n"+
		`data: {"delta":"abc"}`+"\n\n"+
		`data: {"delta":"d\"<e>"}`+"\n\n"+
		"data: [DONE]\n\n", buf.String())
	assert.Equal(t, 4, fl.flushes, "every frame is flushed")
}

func TestStreamDeltasStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var buf bytes.Buffer
	// Cancel once the keep-alive and the first delta are out.
	ew := &eventWriter{w: &buf, flusher: &countingFlusher{cancel: cancel, after: 2}}

	err := streamDeltas(ctx, ew, []string{"one", "two", "three"}, time.Hour)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, ": connected\n\n"+`data: {"delta":"one"}`+"\n\n", buf.String())
	assert.NotContains(t, buf.String(), "[DONE]")
}

func TestStreamDeltasPacing(t *testing.T) {
	var buf bytes.Buffer
	ew := &eventWriter{w: &buf, flusher: nopFlusher{}}
	delay := 15 * time.Millisecond

	start := time.Now()
	require.NoError(t, streamDeltas(context.Background(), ew, []string{"a", "b", "c"}, delay))

	assert.GreaterOrEqual(t, time.Since(start), 3*delay)
	assert.Equal(t, 5, strings.Count(buf.String(), "\n\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestStreamDeltasWriteError(t *testing.T) {
	ew := &eventWriter{w: failingWriter{}, flusher: nopFlusher{}}
	err := streamDeltas(context.Background(), ew, []string{"a"}, 0)
	assert.EqualError(t, err, "broken pipe")
}

func TestPause(t *testing.T) {
	assert.NoError(t, pause(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pause(ctx, 0), context.Canceled)
	assert.ErrorIs(t, pause(ctx, time.Minute), context.Canceled)
}
