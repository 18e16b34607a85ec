// Package domain holds the record types shared by every actor and signal
// miner: videos, channels, transcripts, comments, and the composite research
// and analysis results that the keyword-analysis actor assembles from them.
package domain

import "time"

// Video is a single platform video as returned by search or details lookups.
// Tags preserve the order the source returned them in.
type Video struct {
	ID            string
	Title         string
	Description   string
	PublishedAt   time.Time
	ChannelID     string
	ChannelTitle  string
	Tags          []string
	CategoryID    string
	ViewCount     int64
	LikeCount     int64
	CommentCount  int64
	Duration      time.Duration
	Definition    string
	ThumbnailURLs []string
}

// Channel is a platform channel as returned by channel detail lookups.
// Keywords are parsed from a space/comma separated declared-keywords string
// with surrounding quotes stripped.
type Channel struct {
	ID              string
	Title           string
	Description     string
	CustomURL       string
	SubscriberCount int64
	VideoCount      int64
	ViewCount       int64
	Keywords        []string
	ThumbnailURLs   []string
}

// Transcript is the full concatenated text of a video's captions, or the
// zero value if none exists. Once fetched it is treated as immutable.
type Transcript struct {
	VideoID string
	Text    string
	Lang    string
	Present bool
}

// Comment is one top-level or reply comment on a video. IsQuestion is
// derived once at construction time from the presence of a '?' in Text.
type Comment struct {
	ID          string
	VideoID     string
	Author      string
	Text        string
	LikeCount   int64
	PublishedAt time.Time
	ReplyCount  int64
	IsQuestion  bool
}

// NewComment builds a Comment and derives IsQuestion from text.
func NewComment(id, videoID, author, text string, likeCount, replyCount int64, publishedAt time.Time) Comment {
	return Comment{
		ID:          id,
		VideoID:     videoID,
		Author:      author,
		Text:        text,
		LikeCount:   likeCount,
		ReplyCount:  replyCount,
		PublishedAt: publishedAt,
		IsQuestion:  containsQuestionMark(text),
	}
}

func containsQuestionMark(s string) bool {
	for _, r := range s {
		if r == '?' {
			return true
		}
	}
	return false
}
