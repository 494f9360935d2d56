package housing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RoomFetcher retrieves the full list of available bed slots.
// This interface is implemented by *Client and can be used for testing.
type RoomFetcher interface {
	FetchRooms(ctx context.Context) ([]Room, error)
}

// Ensure Client implements RoomFetcher at compile time.
var _ RoomFetcher = (*Client)(nil)

// DefaultFeedURL is the public proxy in front of the housing availability API.
const DefaultFeedURL = "https://proxy-housing.12458.workers.dev"

const (
	defaultUserAgent = "bedboard/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client talks to the housing availability feed.
type Client struct {
	feedURL string
	http    *resty.Client
	logger  *zap.Logger
}

// NewClient builds a Client for feedURL. A zero timeout uses the default and a
// nil logger discards output.
func NewClient(feedURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	parsed, err := parseFeedURL(feedURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)

	return &Client{
		feedURL: parsed.String(),
		http:    httpClient,
		logger:  logger,
	}, nil
}

// FeedURL returns the normalized feed address.
func (c *Client) FeedURL() string {
	if c == nil {
		return ""
	}
	return c.feedURL
}

// FetchRooms performs a single GET against the feed and decodes the JSON array
// of room records. Any non-2xx status is an error.
func (c *Client) FetchRooms(ctx context.Context) ([]Room, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	started := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("feed request rejected",
			zap.String("url", c.feedURL),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	rooms, err := decodeRooms(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	c.logger.Debug("feed fetched",
		zap.Int("records", len(rooms)),
		zap.Duration("took", time.Since(started)),
	)
	return rooms, nil
}

func parseFeedURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultFeedURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse feed url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}

// decodeRooms requires a JSON array whose elements are all objects.
func decodeRooms(body []byte) ([]Room, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("feed body is null")
	}
	rooms := make([]Room, len(records))
	for i, record := range records {
		if err := rooms[i].UnmarshalJSON(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return rooms, nil
}
