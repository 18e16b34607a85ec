package source

import (
	"context"
	"time"

	"github.com/McZenith/liza.ai.server/internal/adapters"
	"github.com/McZenith/liza.ai.server/internal/domain"
	"github.com/McZenith/liza.ai.server/internal/grain"
	"github.com/McZenith/liza.ai.server/internal/xsync"
)

// ChannelDetailsTTL and ChannelRecentTTL are the two distinct cache
// horizons the channel actor keeps for its two methods.
const (
	ChannelDetailsTTL = 24 * time.Hour
	ChannelRecentTTL  = 6 * time.Hour
)

// channelInstance holds both per-channel caches; it is one grain
// instance per channel id, serialising Details and RecentVideos calls
// against that channel together.
type channelInstance struct {
	id      string
	adapter adapters.ChannelAdapter
	details xsync.TTLCache[*domain.Channel]
	recent  xsync.TTLCache[[]domain.Video]
}

// ChannelRegistry is the per-channel-id channel actor registry.
type ChannelRegistry struct {
	reg *grain.Registry[*channelInstance]
}

// NewChannelRegistry builds the channel actor registry.
func NewChannelRegistry(adapter adapters.ChannelAdapter) *ChannelRegistry {
	return &ChannelRegistry{
		reg: grain.NewRegistry(func(id string) *channelInstance {
			return &channelInstance{id: id, adapter: adapter}
		}),
	}
}

// Details returns the channel's details, using the 24h cache.
func (r *ChannelRegistry) Details(ctx context.Context, channelID string, now time.Time) (*domain.Channel, error) {
	ref := r.reg.Get(channelID)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *channelInstance) (*domain.Channel, error) {
		if cached, ok := inst.details.Get(ChannelDetailsTTL, now); ok {
			return cached, nil
		}
		ch, err := inst.adapter.GetChannel(ctx, inst.id)
		if err != nil {
			logAdapterError("channel-details", inst.id, err)
			ch = nil
		}
		inst.details.Set(ch, now)
		return ch, nil
	})
}

// RecentVideos returns the channel's recent-50 uploads, using the 6h
// cache.
func (r *ChannelRegistry) RecentVideos(ctx context.Context, channelID string, now time.Time) ([]domain.Video, error) {
	ref := r.reg.Get(channelID)
	return grain.Call(ctx, ref, func(ctx context.Context, inst *channelInstance) ([]domain.Video, error) {
		if cached, ok := inst.recent.Get(ChannelRecentTTL, now); ok {
			return cached, nil
		}
		videos, err := inst.adapter.GetRecentVideos(ctx, inst.id, 50)
		if err != nil {
			logAdapterError("channel-recent", inst.id, err)
			videos = nil
		}
		inst.recent.Set(videos, now)
		return videos, nil
	})
}
