package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// mockTransport serves a canned response for every request.
type mockTransport struct {
	statusCode int
	body       string
	requests   int
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requests++
	return &http.Response{
		StatusCode: m.statusCode,
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

// newMockHTTPClient creates a client that returns the given body.
func newMockHTTPClient(statusCode int, body string) *http.Client {
	return &http.Client{Transport: &mockTransport{statusCode: statusCode, body: body}}
}

// newTestSearcher builds an APISearcher whose service talks to a canned
// transport instead of the network.
func newTestSearcher(t *testing.T, client *http.Client) *APISearcher {
	t.Helper()
	service, err := ytapi.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	return &APISearcher{
		service:        service,
		apiKey:         "sekret-key-123",
		quotaRemaining: dailyQuota,
	}
}

func TestAPISearcherSearch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		query      Query
		wantErr    error
		wantCount  int
	}{
		{
			name:       "three items in relevance order",
			statusCode: http.StatusOK,
			body:       SampleSearchResponse,
			query:      Query{Text: "python tutorial", MaxResults: 5},
			wantCount:  3,
		},
		{
			name:       "max results clamps oversized requests",
			statusCode: http.StatusOK,
			body:       SampleSearchResponse,
			query:      Query{Text: "python tutorial", MaxResults: 500},
			wantCount:  3,
		},
		{
			name:       "result truncated to requested max",
			statusCode: http.StatusOK,
			body:       SampleSearchResponse,
			query:      Query{Text: "python tutorial", MaxResults: 2},
			wantCount:  2,
		},
		{
			name:    "empty query rejected",
			query:   Query{Text: "   ", MaxResults: 5},
			wantErr: ErrEmptyQuery,
		},
		{
			name:    "unknown audience rejected",
			query:   Query{Text: "python", MaxResults: 5, Audience: "expert"},
			wantErr: ErrInvalidAudience,
		},
		{
			name:       "quota exhausted",
			statusCode: http.StatusForbidden,
			body:       SampleQuotaErrorResponse,
			query:      Query{Text: "python", MaxResults: 5},
			wantErr:    ErrQuotaExceeded,
		},
		{
			name:       "invalid api key",
			statusCode: http.StatusBadRequest,
			body:       SampleKeyInvalidResponse,
			query:      Query{Text: "python", MaxResults: 5},
			wantErr:    ErrAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := newTestSearcher(t, newMockHTTPClient(tt.statusCode, tt.body))

			videos, err := searcher.Search(context.Background(), tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Search() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() unexpected error: %v", err)
			}
			if len(videos) != tt.wantCount {
				t.Fatalf("Search() returned %d videos, want %d", len(videos), tt.wantCount)
			}
			if int64(len(videos)) > clampMaxResults(tt.query.MaxResults) {
				t.Errorf("Search() returned more than max_results")
			}
		})
	}
}

func TestAPISearcherSearchNormalization(t *testing.T) {
	searcher := newTestSearcher(t, newMockHTTPClient(http.StatusOK, SampleSearchResponse))

	videos, err := searcher.Search(context.Background(), Query{Text: "python tutorial", MaxResults: 5})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("got %d videos, want 3", len(videos))
	}

	first := videos[0]
	if first.ID != "vid-1" {
		t.Errorf("ID = %q, want vid-1", first.ID)
	}
	if first.Title != "Python Tutorial Part 1" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Channel != "Test Uploader" {
		t.Errorf("Channel = %q", first.Channel)
	}
	if first.URL != "https://www.youtube.com/watch?v=vid-1" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Thumbnail != "https://i.ytimg.com/vi/vid-1/hqdefault.jpg" {
		t.Errorf("Thumbnail = %q, want high-res variant", first.Thumbnail)
	}
	if first.Published.IsZero() {
		t.Errorf("Published is zero, want parsed timestamp")
	}

	// Provider order is preserved.
	if videos[1].ID != "vid-2" || videos[2].ID != "vid-3" {
		t.Errorf("order not preserved: %q, %q", videos[1].ID, videos[2].ID)
	}

	// Missing optional fields normalize to empty values, not absent ones.
	third := videos[2]
	if third.Description != "" || third.Thumbnail != "" {
		t.Errorf("missing fields should normalize to empty strings")
	}
	if !third.Published.IsZero() {
		t.Errorf("missing publishedAt should normalize to zero time")
	}
	if third.URL == "" {
		t.Errorf("URL should be derived from the video ID")
	}
}

func TestAPISearcherDoesNotLeakKey(t *testing.T) {
	searcher := newTestSearcher(t, newMockHTTPClient(http.StatusBadRequest, SampleKeyInvalidResponse))

	_, err := searcher.Search(context.Background(), Query{Text: "python", MaxResults: 5})
	if err == nil {
		t.Fatal("Search() expected error")
	}
	if strings.Contains(err.Error(), "sekret-key-123") {
		t.Errorf("error message leaks the API key: %v", err)
	}
}

func TestAPISearcherEmptyQuerySkipsNetwork(t *testing.T) {
	transport := &mockTransport{statusCode: http.StatusOK, body: SampleSearchResponse}
	searcher := newTestSearcher(t, &http.Client{Transport: transport})

	if _, err := searcher.Search(context.Background(), Query{Text: ""}); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("error = %v, want ErrEmptyQuery", err)
	}
	if transport.requests != 0 {
		t.Errorf("empty query issued %d network calls, want 0", transport.requests)
	}
}

func TestAPISearcherChannelVideosFallback(t *testing.T) {
	searcher := newTestSearcher(t, newMockHTTPClient(http.StatusForbidden, SampleQuotaErrorResponse))

	fallbackClient := newMockHTTPClient(http.StatusOK, SampleAtomFeed)
	searcher.SetFallback(NewFeedListerWithClient(fallbackClient))

	videos, err := searcher.ChannelVideos(context.Background(), "UCuAXFkgsw1L7xaCfnd5JJOw", 10)
	if err != nil {
		t.Fatalf("ChannelVideos() with fallback returned error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos from fallback, want 2", len(videos))
	}

	// The quota flag sticks: subsequent calls go straight to the fallback.
	searcher.mu.Lock()
	exhausted := searcher.quotaExhausted
	searcher.mu.Unlock()
	if !exhausted {
		t.Errorf("quotaExhausted not set after quota error")
	}
}

func TestAPISearcherChannelVideosNoFallback(t *testing.T) {
	searcher := newTestSearcher(t, newMockHTTPClient(http.StatusForbidden, SampleQuotaErrorResponse))

	_, err := searcher.ChannelVideos(context.Background(), "UCuAXFkgsw1L7xaCfnd5JJOw", 10)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("error = %v, want ErrQuotaExceeded", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error is not a *ProviderError: %v", err)
	}
}

func TestClassifyPlainError(t *testing.T) {
	searcher := &APISearcher{apiKey: "sekret-key-123"}
	err := searcher.classify(errors.New("dial tcp: lookup failed key=sekret-key-123"))
	if strings.Contains(err.Error(), "sekret-key-123") {
		t.Errorf("classified error leaks the API key: %v", err)
	}
}
