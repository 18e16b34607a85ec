package boundary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// sseMessage is one Server-Sent Event frame, trimmed to the single
// shape on-long-tail-analysed needs: an event name plus a JSON data
// payload, no id/retry bookkeeping.
type sseMessage struct {
	Event string
	Data  []byte
}

var lineBreakReplacer = strings.NewReplacer("\n", "\\n", "\r", "\\r")

func (m sseMessage) encode() []byte {
	var buf bytes.Buffer
	if m.Event != "" {
		buf.WriteString("event: ")
		buf.WriteString(lineBreakReplacer.Replace(m.Event))
		buf.WriteByte('\n')
	}
	for _, line := range bytes.Split(m.Data, []byte("\n")) {
		buf.WriteString("data: ")
		buf.Write(line)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

func setSSEHeaders(h http.Header) {
	h.Set("Content-Type", "text/event-stream; charset=utf-8")
	h.Set("Connection", "keep-alive")
	if h.Get("Cache-Control") == "" {
		h.Set("Cache-Control", "no-cache")
	}
}

// writeSSEStream relays every value from updates to w as a JSON-encoded
// SSE event named eventName, flushing after each write, until updates
// closes or ctx is cancelled. This drives the on-long-tail-analysed
// subscription handler.
func writeSSEStream[T any](ctx context.Context, w http.ResponseWriter, eventName string, updates <-chan T) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return errNotFlushable
	}
	setSSEHeaders(w.Header())
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-updates:
			if !ok {
				return nil
			}
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := w.Write(sseMessage{Event: eventName, Data: data}.encode()); err != nil {
				return err
			}
			flusher.Flush()
		}
	}
}

var errNotFlushable = sseError("boundary: response writer does not support flushing")

type sseError string

func (e sseError) Error() string { return string(e) }
