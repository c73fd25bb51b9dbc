// Package reddit resolves the creation timestamp of a Reddit post for
// the public post-date tool.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

const (
	defaultBaseURL = "https://www.reddit.com"
	requestTimeout = 10 * time.Second

	// Reddit's unauthenticated JSON endpoint rejects default Go
	// user agents, so we present a browser one.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Reddit launched in June 2005; anything earlier is a parsing artifact.
var minPostTime = time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC)

var postURLPattern = regexp.MustCompile(`(?i)reddit\.com/r/([^/]+)/comments/([a-z0-9]+)`)

// ErrInvalidURL is returned when the input is not a Reddit post URL.
var ErrInvalidURL = errors.New("reddit: invalid post URL")

// PostRef identifies a post by subreddit and id.
type PostRef struct {
	Subreddit string
	PostID    string
}

// ParsePostURL extracts the subreddit and post id from a Reddit URL.
func ParsePostURL(url string) (PostRef, error) {
	match := postURLPattern.FindStringSubmatch(url)
	if match == nil {
		return PostRef{}, ErrInvalidURL
	}
	return PostRef{Subreddit: match[1], PostID: match[2]}, nil
}

// Client fetches post metadata from Reddit's JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client against the public Reddit API.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchPostTimestamp returns the post's creation time as Unix
// milliseconds.
func (c *Client) FetchPostTimestamp(ctx context.Context, ref PostRef) (int64, error) {
	url := fmt.Sprintf("%s/r/%s/comments/%s/.json", c.baseURL, ref.Subreddit, ref.PostID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build reddit request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch reddit post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.New("failed to fetch post data from Reddit; the post may not exist or may be private")
	}

	var listings []listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return 0, fmt.Errorf("decode reddit response: %w", err)
	}

	if len(listings) == 0 || len(listings[0].Data.Children) == 0 {
		return 0, errors.New("could not extract post date from Reddit response")
	}
	createdUTC := listings[0].Data.Children[0].Data.CreatedUTC
	if createdUTC == 0 {
		return 0, errors.New("could not extract post date from Reddit response")
	}

	return int64(createdUTC * 1000), nil
}

// ValidateTimestamp rejects timestamps outside Reddit's lifetime,
// allowing a day of clock skew into the future.
func ValidateTimestamp(timestampMillis int64) error {
	min := minPostTime.UnixMilli()
	max := time.Now().Add(24 * time.Hour).UnixMilli()
	if timestampMillis < min || timestampMillis > max {
		return errors.New("invalid post timestamp; please verify the Reddit URL")
	}
	return nil
}
