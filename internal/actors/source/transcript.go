package source

import (
	"context"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// TranscriptTTL is "∞": transcripts do not change once published.
const TranscriptTTL = 0

// NewTranscriptRegistry builds the per-video-id transcript actor
// registry.
func NewTranscriptRegistry(adapter adapters.TranscriptAdapter) *Registry[*domain.Transcript] {
	return NewRegistry("transcript", TranscriptTTL, nil, func(ctx context.Context, videoID string) (*domain.Transcript, error) {
		return adapter.GetTranscript(ctx, videoID)
	})
}
