package message

import "testing"

type payload struct {
	Region string `json:"region"`
}

func TestNew_MarshalsViaDefaultCodec(t *testing.T) {
	m := New(payload{Region: "US"})
	var got payload
	if err := m.Unmarshal(&got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Region != "US" {
		t.Errorf("Region = %q, want US", got.Region)
	}
}

func TestNew_RawBytesPassThrough(t *testing.T) {
	raw := []byte(`{"region":"GB"}`)
	m := New(raw)
	if string(m.Payload()) != string(raw) {
		t.Errorf("Payload() = %q, want %q", m.Payload(), raw)
	}
}

func TestNewWithHeaders_AttachesHeaders(t *testing.T) {
	h := NewHeaders().Set("attempt", 1)
	m := NewWithHeaders(payload{Region: "DE"}, h)
	v, ok := m.Headers().Get("attempt")
	if !ok || v != 1 {
		t.Errorf("Headers().Get(\"attempt\") = %v, %v, want 1, true", v, ok)
	}
}

func TestHeaders_GetMissingKey(t *testing.T) {
	h := NewHeaders()
	if _, ok := h.Get("missing"); ok {
		t.Error("Get on an empty Headers map should report false")
	}
}
