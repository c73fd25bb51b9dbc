package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePostURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		want    PostRef
		wantErr bool
	}{
		{
			name: "standard post url",
			url:  "https://www.reddit.com/r/golang/comments/abc123/some_title/",
			want: PostRef{Subreddit: "golang", PostID: "abc123"},
		},
		{
			name: "url without scheme",
			url:  "reddit.com/r/programming/comments/xyz789",
			want: PostRef{Subreddit: "programming", PostID: "xyz789"},
		},
		{
			name: "case insensitive host",
			url:  "https://REDDIT.com/r/webdev/comments/q1w2e3/title",
			want: PostRef{Subreddit: "webdev", PostID: "q1w2e3"},
		},
		{name: "not a reddit url", url: "https://example.com/r/golang/x", wantErr: true},
		{name: "missing comments segment", url: "https://reddit.com/r/golang/", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePostURL(tc.url)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFetchPostTimestamp(t *testing.T) {
	created := 1700000000.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/r/golang/comments/abc123/.json", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprintf(w, `[{"data":{"children":[{"data":{"created_utc":%f}}]}}]`, created)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	got, err := client.FetchPostTimestamp(context.Background(), PostRef{Subreddit: "golang", PostID: "abc123"})
	require.NoError(t, err)
	require.Equal(t, int64(1700000000000), got)
}

func TestFetchPostTimestampNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchPostTimestamp(context.Background(), PostRef{Subreddit: "golang", PostID: "missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "may not exist")
}

func TestFetchPostTimestampEmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"data":{"children":[]}}]`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchPostTimestamp(context.Background(), PostRef{Subreddit: "golang", PostID: "abc123"})
	require.Error(t, err)
}

func TestValidateTimestamp(t *testing.T) {
	require.NoError(t, ValidateTimestamp(time.Now().UnixMilli()))
	require.NoError(t, ValidateTimestamp(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()))

	// Before Reddit existed.
	require.Error(t, ValidateTimestamp(time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()))
	// Too far in the future.
	require.Error(t, ValidateTimestamp(time.Now().Add(48*time.Hour).UnixMilli()))
}
