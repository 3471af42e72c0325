// Package youtube provides video search and channel listing against the
// YouTube Data API v3, normalized into provider-independent records.
package youtube

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors for search and listing operations.
var (
	// ErrEmptyQuery indicates the search text was empty or blank.
	ErrEmptyQuery = errors.New("youtube: empty query")
	// ErrInvalidAudience indicates an unknown audience value.
	ErrInvalidAudience = errors.New("youtube: invalid audience")
	// ErrQuotaExceeded indicates the API daily quota is exhausted.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")
	// ErrAuthFailed indicates the API key was rejected.
	ErrAuthFailed = errors.New("youtube: authentication failed")
	// ErrChannelNotFound indicates the channel does not exist.
	ErrChannelNotFound = errors.New("youtube: channel not found")
)

// MaxPageSize is the largest result count the provider allows per call.
const MaxPageSize = 50

// Audience narrows a search toward a viewer skill level.
type Audience string

// Supported audience tiers.
const (
	AudienceBeginner     Audience = "beginner"
	AudienceIntermediate Audience = "intermediate"
	AudienceAdvanced     Audience = "advanced"
)

// ParseAudience validates an audience string. The empty string is valid
// and means no audience filter.
func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case "", AudienceBeginner, AudienceIntermediate, AudienceAdvanced:
		return Audience(s), nil
	}
	return "", ErrInvalidAudience
}

// Query describes one search request. A Query is built per incoming
// request and never mutated after construction.
type Query struct {
	// Text is the search text. Must be non-empty.
	Text string

	// MaxResults caps the number of records returned.
	// Values outside [1, MaxPageSize] are clamped.
	MaxResults int64

	// Audience optionally narrows results toward a skill level.
	Audience Audience
}

// Validate checks the query invariants.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	if _, err := ParseAudience(string(q.Audience)); err != nil {
		return err
	}
	return nil
}

// providerText returns the text sent to the provider, with the audience
// tier folded into the query the way the search page phrases it.
func (q Query) providerText() string {
	switch q.Audience {
	case AudienceBeginner:
		return q.Text + " for beginners"
	case AudienceIntermediate:
		return q.Text + " for intermediate viewers"
	case AudienceAdvanced:
		return q.Text + " for advanced viewers"
	}
	return q.Text
}

// clampMaxResults bounds a requested page size to the provider's range.
func clampMaxResults(n int64) int64 {
	if n < 1 {
		return 1
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// Video is the normalized record for one search result. Missing optional
// provider fields are empty strings, never absent.
type Video struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// Channel is the display name of the publishing channel.
	Channel string `json:"channel"`

	// ChannelID is the YouTube channel ID.
	ChannelID string `json:"channel_id"`

	// URL is the full watch URL, derived from the video ID.
	URL string `json:"url"`

	// Description is the video description. May be truncated by the provider.
	Description string `json:"description"`

	// Published is when the video was published. Zero if the provider
	// omitted it.
	Published time.Time `json:"published_at"`

	// Thumbnail is the URL of the best available thumbnail.
	Thumbnail string `json:"thumbnail"`
}

// WatchURL returns the full YouTube URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Searcher searches videos matching a query. Implementations issue one
// outbound call per invocation and keep no state across requests.
type Searcher interface {
	// Search returns normalized records in provider relevance order.
	// The result never exceeds the clamped Query.MaxResults.
	Search(ctx context.Context, q Query) ([]Video, error)
}

// ChannelLister fetches the most recent videos of a channel. Different
// implementations use different strategies (Data API, Atom feed).
type ChannelLister interface {
	// ChannelVideos returns up to maxResults recent videos, newest first.
	ChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]Video, error)
}

// ProviderError wraps upstream failures with the operation that failed.
// Use errors.Is to detect quota and auth sub-cases:
//
//	if errors.Is(err, youtube.ErrQuotaExceeded) {
//		// back off until the daily quota resets
//	}
type ProviderError struct {
	// Op is the operation that failed ("search", "channel_videos").
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the provider failure.
func (e *ProviderError) Error() string {
	return "youtube: provider " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *ProviderError) Unwrap() error { return e.Err }
