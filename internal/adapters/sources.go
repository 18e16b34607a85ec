package adapters

// NewSources builds one HTTPClient and wires every adapter interface in
// Sources to it. cmd/server assembles the same bundle itself in
// buildSources rather than calling this.
func NewSources(cfg HTTPConfig, keys *KeyRotator) *Sources {
	c := NewHTTPClient(cfg, keys)
	return &Sources{
		Search:              c,
		YouTubeAutocomplete: c.YouTubeAutocomplete(),
		GoogleAutocomplete:  c.GoogleAutocomplete(),
		KeywordPlanner:      c,
		Trends:              c,
		VideoDetails:        c,
		Channel:             c,
		Transcript:          c,
		Comments:            c,
		Reddit:              c.Reddit(),
		GoogleVideo:         c.GoogleVideo(),
		Trending:            c,
	}
}
