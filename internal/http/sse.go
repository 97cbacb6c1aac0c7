package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"footscan-chat/pkg"
)

const doneSentinel = "[DONE]"

// eventWriter writes text/event-stream frames and flushes each one so it
// leaves the server immediately.
type eventWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func newEventWriter(w http.ResponseWriter) *eventWriter {
	flusher, ok := w.(http.Flusher)
	if !ok {
		flusher = nopFlusher{}
	}
	return &eventWriter{w: w, flusher: flusher}
}

type nopFlusher struct{}

func (nopFlusher) Flush() {}

// comment writes a comment frame, which clients ignore.
func (e *eventWriter) comment(text string) error {
	return e.write(": " + text + "\n\n")
}

// data writes payload as a single data frame.
func (e *eventWriter) data(payload string) error {
	return e.write("data: " + payload + "\n\n")
}

func (e *eventWriter) dataJSON(v any) error {
	payload, err := marshalJSON(v)
	if err != nil {
		return err
	}
	return e.data(string(payload))
}

func (e *eventWriter) write(frame string) error {
	if _, err := io.WriteString(e.w, frame); err != nil {
		return err
	}
	e.flusher.Flush()
	return nil
}

// streamDeltas emits the keep-alive comment, one data frame per delta with
// delay after each, and the [DONE] sentinel.  It stops without the sentinel
// as soon as ctx is cancelled, which is how a client disconnect shows up.
func streamDeltas(ctx context.Context, ew *eventWriter, deltas []string, delay time.Duration) error {
	if err := ew.comment("connected"); err != nil {
		return err
	}
	for _, delta := range deltas {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ew.dataJSON(pkg.Delta{Delta: delta}); err != nil {
			return err
		}
		if err := pause(ctx, delay); err != nil {
			return err
		}
	}
	return ew.data(doneSentinel)
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
