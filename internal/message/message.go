// Package message is the envelope format used by the job/worker/broker
// scheduling fabric that drives the scheduled warm-up worker: a
// payload plus headers, marshalled through a pluggable codec.
package message

import "encoding/json"

// ID identifies a message within its broker, opaque to callers.
type ID any

// Headers carries side-channel metadata alongside a message payload.
type Headers map[string]any

// NewHeaders creates an empty Headers map.
func NewHeaders() Headers {
	return make(Headers)
}

// Set stores a header value and returns the map for chaining.
func (h Headers) Set(key string, value any) Headers {
	h[key] = value
	return h
}

// Get retrieves a header value.
func (h Headers) Get(key string) (any, bool) {
	v, ok := h[key]
	return v, ok
}

// Msg is an immutable envelope holding a marshalled payload.
type Msg struct {
	payload []byte
	headers Headers
}

// New marshals v (or uses it directly if already []byte) into a Msg.
func New(v any) *Msg {
	if b, ok := v.([]byte); ok {
		return &Msg{payload: b}
	}
	b, _ := Marshal(v)
	return &Msg{payload: b}
}

// NewWithHeaders is New plus an attached Headers map.
func NewWithHeaders(v any, headers Headers) *Msg {
	m := New(v)
	m.headers = headers
	return m
}

// Payload returns the raw marshalled bytes.
func (m *Msg) Payload() []byte {
	return m.payload
}

// Headers returns the attached headers, possibly nil.
func (m *Msg) Headers() Headers {
	return m.headers
}

// Unmarshal decodes the payload into v using the default codec.
func (m *Msg) Unmarshal(v any) error {
	return Unmarshal(m.payload, v)
}

// Codec marshals and unmarshals message payloads.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var defaultCodec Codec

func init() {
	SetDefaultCodec(NewJSONCodec())
}

// SetDefaultCodec replaces the package-level codec.
func SetDefaultCodec(c Codec) {
	defaultCodec = c
}

type jsonCodec struct{}

// NewJSONCodec returns the default encoding/json backed Codec.
func NewJSONCodec() Codec {
	return jsonCodec{}
}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Marshal encodes v with the default codec.
func Marshal(v any) ([]byte, error) { return defaultCodec.Marshal(v) }

// Unmarshal decodes data into v with the default codec.
func Unmarshal(data []byte, v any) error { return defaultCodec.Unmarshal(data, v) }
