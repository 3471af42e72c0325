package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	feedURLTemplate = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"
	feedTimeout     = 30 * time.Second
)

// FeedLister implements ChannelLister using YouTube's public Atom feeds.
// Feeds need no API key and cost no quota, but only carry the 15 most
// recent videos, so this is the fallback path rather than the primary.
type FeedLister struct {
	client *http.Client
}

// NewFeedLister creates a feed-based channel lister.
func NewFeedLister() *FeedLister {
	return &FeedLister{
		client: &http.Client{Timeout: feedTimeout},
	}
}

// NewFeedListerWithClient creates a feed lister with a custom HTTP client.
func NewFeedListerWithClient(client *http.Client) *FeedLister {
	return &FeedLister{client: client}
}

// ChannelVideos fetches recent videos from the channel's Atom feed,
// newest first. The channelID may be a bare ID (UC...) or a channel URL.
func (f *FeedLister) ChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]Video, error) {
	id, err := extractChannelID(channelID)
	if err != nil {
		return nil, &ProviderError{Op: "channel_videos", Err: err}
	}

	feedURL := fmt.Sprintf(feedURLTemplate, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &ProviderError{Op: "channel_videos", Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Op: "channel_videos", Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &ProviderError{Op: "channel_videos", Err: ErrChannelNotFound}
	case http.StatusTooManyRequests:
		return nil, &ProviderError{Op: "channel_videos", Err: ErrQuotaExceeded}
	default:
		return nil, &ProviderError{Op: "channel_videos",
			Err: fmt.Errorf("feed HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Op: "channel_videos", Err: err}
	}

	feed, err := parseAtomFeed(body)
	if err != nil {
		return nil, &ProviderError{Op: "channel_videos", Err: err}
	}

	videos := feedToVideos(feed, id)
	max := clampMaxResults(maxResults)
	if int64(len(videos)) > max {
		videos = videos[:max]
	}
	return videos, nil
}

// atomFeed represents a YouTube Atom feed document.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Author  atomAuthor  `xml:"author"`
	Entries []atomEntry `xml:"entry"`
}

type atomAuthor struct {
	Name string `xml:"name"`
	URI  string `xml:"uri"`
}

type atomEntry struct {
	ID          string        `xml:"id"`
	VideoID     string        `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	ChannelID   string        `xml:"http://www.youtube.com/xml/schemas/2015 channelId"`
	Title       string        `xml:"title"`
	Published   time.Time     `xml:"published"`
	Description string        `xml:"group>description"`
	Thumbnail   atomThumbnail `xml:"group>thumbnail"`
}

type atomThumbnail struct {
	URL string `xml:"url,attr"`
}

// parseAtomFeed parses YouTube's Atom XML feed.
func parseAtomFeed(data []byte) (*atomFeed, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parse atom feed: %w", err)
	}
	return &feed, nil
}

// feedToVideos normalizes feed entries into Video records, preserving
// feed order (newest first).
func feedToVideos(feed *atomFeed, channelID string) []Video {
	videos := make([]Video, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		videos = append(videos, Video{
			ID:          entry.VideoID,
			Title:       entry.Title,
			Channel:     feed.Author.Name,
			ChannelID:   channelID,
			URL:         WatchURL(entry.VideoID),
			Description: entry.Description,
			Published:   entry.Published,
			Thumbnail:   entry.Thumbnail.URL,
		})
	}
	return videos
}

// channelIDRegex matches YouTube channel IDs (UC followed by 22 base64 chars).
var channelIDRegex = regexp.MustCompile(`UC[a-zA-Z0-9_-]{22}`)

// extractChannelID extracts a channel ID from a bare ID or channel URL.
func extractChannelID(input string) (string, error) {
	if channelIDRegex.MatchString(input) {
		return channelIDRegex.FindString(input), nil
	}

	if strings.Contains(input, "youtube.com/channel/") {
		parts := strings.Split(input, "youtube.com/channel/")
		if len(parts) > 1 {
			id := strings.Split(parts[1], "/")[0]
			id = strings.Split(id, "?")[0]
			if channelIDRegex.MatchString(id) {
				return id, nil
			}
		}
	}

	return "", fmt.Errorf("%w: cannot extract channel ID from %q", ErrChannelNotFound, input)
}
