package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boba-tech/site-api/internal/reddit"
)

func TestServicesListEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/services", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var data struct {
		Services []struct {
			Slug string `json:"slug"`
		} `json:"services"`
		Industries []struct {
			Slug string `json:"slug"`
		} `json:"industries"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(data.Services) == 0 || len(data.Industries) == 0 {
		t.Fatalf("expected non-empty catalog, got %+v", data)
	}
}

func TestServiceDetailEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/services/mvp-development", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var service struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(resp.Data, &service); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if service.Title != "MVP Development" {
		t.Fatalf("unexpected service: %+v", service)
	}
}

func TestServiceDetailFallsBackToIndustry(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/services/healthcare", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var industry struct {
		Industry string `json:"industry"`
		Services []struct {
			Slug string `json:"slug"`
		} `json:"services"`
	}
	if err := json.Unmarshal(resp.Data, &industry); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if industry.Industry != "Healthcare" || len(industry.Services) == 0 {
		t.Fatalf("unexpected industry: %+v", industry)
	}
}

func TestServiceDetailNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/services/no-such-service", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if resp.Success {
		t.Fatal("expected failure response")
	}
}

func TestRedditPostDateRequiresURL(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/tools/reddit-post-date", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if resp.Message != "URL parameter is required" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestRedditPostDateReturnsTimestamp(t *testing.T) {
	srv, _ := newTestServer(t)

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"data":{"children":[{"data":{"created_utc":1700000000}}]}}]`)
	}))
	defer fake.Close()
	srv.reddit = reddit.NewClientWithBaseURL(fake.URL)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/tools/reddit-post-date?url=https%3A%2F%2Freddit.com%2Fr%2Fgolang%2Fcomments%2Fabc123%2Ftitle", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Timestamp int64  `json:"timestamp"`
		PostID    string `json:"postId"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.Timestamp != 1700000000000 || data.PostID != "abc123" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestRedditPostDateRejectsBadURL(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/tools/reddit-post-date?url=https%3A%2F%2Fexample.com%2Fnot-reddit", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if resp.Message != "Invalid Reddit URL format" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
