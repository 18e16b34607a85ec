package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
)

// CommentsTTL is the comments actor's cache horizon.
const CommentsTTL = 6 * time.Hour

// CommentsMax is the top-N the actor caches; the enrichment actor's Full
// and Fast methods slice down from this for their own top-50/top-20
// needs.
const CommentsMax = 50

// NewCommentsRegistry builds the per-video-id comments actor registry.
func NewCommentsRegistry(adapter adapters.CommentsAdapter) *Registry[[]domain.Comment] {
	return NewRegistry("comments", CommentsTTL, nil, func(ctx context.Context, videoID string) ([]domain.Comment, error) {
		return adapter.GetComments(ctx, videoID, CommentsMax)
	})
}
