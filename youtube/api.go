package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

const (
	// searchQuotaCost is the Data API quota price of one search call.
	searchQuotaCost = 100

	// dailyQuota is the default daily quota allowance.
	dailyQuota = 10000
)

// APISearcher implements Searcher and ChannelLister using the YouTube
// Data API v3. Search calls never fall back; channel listing gracefully
// falls back to a feed-based lister when the quota is exhausted.
type APISearcher struct {
	service *ytapi.Service
	apiKey  string

	mu             sync.Mutex
	quotaRemaining int
	quotaExhausted bool
	fallback       ChannelLister
}

// NewAPISearcher creates a Data API backed searcher. The API key is
// required; it is injected here rather than read from the environment so
// callers own configuration.
func NewAPISearcher(ctx context.Context, apiKey string) (*APISearcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key required")
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &APISearcher{
		service:        service,
		apiKey:         apiKey,
		quotaRemaining: dailyQuota,
	}, nil
}

// SetFallback sets the lister used for channel listing once the API
// quota is exhausted.
func (a *APISearcher) SetFallback(lister ChannelLister) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fallback = lister
}

// Search issues one search call and returns normalized records in
// provider relevance order. The result never exceeds the clamped
// Query.MaxResults.
func (a *APISearcher) Search(ctx context.Context, q Query) ([]Video, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	max := clampMaxResults(q.MaxResults)

	call := a.service.Search.List([]string{"snippet"}).
		Q(q.providerText()).
		Type("video").
		Order("relevance").
		SafeSearch("moderate").
		MaxResults(max).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, &ProviderError{Op: "search", Err: a.classify(err)}
	}
	a.consumeQuota(searchQuotaCost)

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, videoFromSearchItem(item))
	}
	if int64(len(videos)) > max {
		videos = videos[:max]
	}
	return videos, nil
}

// ChannelVideos lists recent videos of a channel via the search endpoint,
// newest first. When the quota is exhausted and a fallback lister is set,
// the fallback serves the request instead.
func (a *APISearcher) ChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]Video, error) {
	a.mu.Lock()
	exhausted, fallback := a.quotaExhausted, a.fallback
	a.mu.Unlock()

	if exhausted && fallback != nil {
		slog.Debug("quota exhausted, using feed lister", slog.String("channel", channelID))
		return fallback.ChannelVideos(ctx, channelID, maxResults)
	}

	max := clampMaxResults(maxResults)
	call := a.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(max).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		cause := a.classify(err)
		if errors.Is(cause, ErrQuotaExceeded) {
			a.markExhausted()
			if fallback != nil {
				slog.Warn("quota exceeded, falling back to feed lister",
					slog.String("channel", channelID))
				return fallback.ChannelVideos(ctx, channelID, maxResults)
			}
		}
		return nil, &ProviderError{Op: "channel_videos", Err: cause}
	}
	a.consumeQuota(searchQuotaCost)

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, videoFromSearchItem(item))
	}
	if int64(len(videos)) > max {
		videos = videos[:max]
	}
	return videos, nil
}

// videoFromSearchItem normalizes one provider item. Absent optional
// fields become empty strings so the record shape is stable.
func videoFromSearchItem(item *ytapi.SearchResult) Video {
	var v Video
	if item == nil {
		return v
	}
	if item.Id != nil {
		v.ID = item.Id.VideoId
	}
	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.Channel = item.Snippet.ChannelTitle
		v.ChannelID = item.Snippet.ChannelId
		v.Description = item.Snippet.Description
		v.Thumbnail = bestThumbnail(item.Snippet.Thumbnails)
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			v.Published = t
		}
	}
	if v.ID != "" {
		v.URL = WatchURL(v.ID)
	}
	return v
}

// bestThumbnail picks the highest-resolution thumbnail available.
func bestThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, candidate := range []*ytapi.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if candidate != nil {
			return candidate.Url
		}
	}
	return ""
}

// classify maps provider failures onto sentinel errors. Messages that
// pass through verbatim are scrubbed so the API key never leaks into
// logs or responses.
func (a *APISearcher) classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		for _, item := range gerr.Errors {
			switch item.Reason {
			case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded", "userRateLimitExceeded":
				return ErrQuotaExceeded
			case "keyInvalid", "keyExpired", "accessNotConfigured":
				return ErrAuthFailed
			}
		}
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrAuthFailed
		case http.StatusNotFound:
			return ErrChannelNotFound
		}
		return fmt.Errorf("http %d: %s", gerr.Code, a.scrub(gerr.Message))
	}
	return errors.New(a.scrub(err.Error()))
}

// scrub removes the API key from a message.
func (a *APISearcher) scrub(msg string) string {
	if a.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, a.apiKey, "[redacted]")
}

// consumeQuota tracks estimated quota usage and flips the exhausted flag
// once the allowance is spent.
func (a *APISearcher) consumeQuota(units int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quotaRemaining -= units
	if a.quotaRemaining < searchQuotaCost {
		a.quotaExhausted = true
	}
}

func (a *APISearcher) markExhausted() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quotaExhausted = true
	a.quotaRemaining = 0
}
