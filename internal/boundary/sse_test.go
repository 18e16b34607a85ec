package boundary

import (
	"bytes"
	"testing"
)

func TestSSEMessage_EncodeIncludesEventAndDataLines(t *testing.T) {
	m := sseMessage{Event: "long-tail-analysed", Data: []byte(`{"a":1}`)}
	got := m.encode()
	want := []byte("event: long-tail-analysed\ndata: {\"a\":1}\n\n")
	if !bytes.Equal(got, want) {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}

func TestSSEMessage_EncodeSplitsMultilineData(t *testing.T) {
	m := sseMessage{Event: "e", Data: []byte("line1\nline2")}
	got := m.encode()
	want := []byte("event: e\ndata: line1\ndata: line2\n\n")
	if !bytes.Equal(got, want) {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}

func TestSSEMessage_EncodeWithoutEventOmitsEventLine(t *testing.T) {
	m := sseMessage{Data: []byte("x")}
	got := m.encode()
	want := []byte("data: x\n\n")
	if !bytes.Equal(got, want) {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}
