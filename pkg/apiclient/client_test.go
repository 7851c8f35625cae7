package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestSearch(t *testing.T) {
	var gotPath string
	var gotReq SearchRequest
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ResultList{
			Items: []Result{{
				Artwork:        Artwork{ID: "art-1", Title: "Harbor at Dusk"},
				RelevanceScore: 0.61,
				Market:         Market{Demand: "high"},
			}},
			Total: 1,
		})
	})

	resp, err := c.Search(context.Background(), &SearchRequest{
		Query:   "calm seascape",
		Filters: &Filters{Price: &Range{Max: 2000}},
		Limit:   5,
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotPath != "/v1/search" {
		t.Errorf("path = %q", gotPath)
	}
	if gotReq.Query != "calm seascape" || gotReq.Filters.Price.Max != 2000 {
		t.Errorf("request = %+v", gotReq)
	}
	if resp.Total != 1 || resp.Items[0].Artwork.ID != "art-1" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Items[0].Market.Demand != "high" {
		t.Errorf("market = %+v", resp.Items[0].Market)
	}
}

func TestSearch_BadRequest(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apiError{Code: "invalid_query", Message: "query is required"})
	})

	_, err := c.Search(context.Background(), &SearchRequest{})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestTemplatedSearchPaths(t *testing.T) {
	var paths []string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(ResultList{})
	})

	ctx := context.Background()
	if _, err := c.SearchByImage(ctx, &ImageSearchRequest{ImageURL: "https://img/x.jpg"}); err != nil {
		t.Fatalf("image: %v", err)
	}
	if _, err := c.SearchByMood(ctx, &MoodSearchRequest{Mood: "calm"}); err != nil {
		t.Fatalf("mood: %v", err)
	}
	if _, err := c.SearchByColor(ctx, &ColorSearchRequest{Color: "blue"}); err != nil {
		t.Fatalf("color: %v", err)
	}
	if _, err := c.SearchByStyle(ctx, &StyleSearchRequest{Style: "impressionist"}); err != nil {
		t.Fatalf("style: %v", err)
	}

	want := []string{"/v1/search/image", "/v1/search/mood", "/v1/search/color", "/v1/search/style"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestSuggestionsAndTrending(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/suggestions":
			if r.URL.Query().Get("q") != "abstract" || r.URL.Query().Get("limit") != "3" {
				t.Errorf("query = %v", r.URL.Query())
			}
			_ = json.NewEncoder(w).Encode(termList{Items: []string{"abstract art", "abstract painting"}})
		case "/v1/trending":
			_ = json.NewEncoder(w).Encode(termList{Items: []string{"abstract painting"}})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	ctx := context.Background()
	sugg, err := c.Suggestions(ctx, "abstract", 3)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(sugg) != 2 || sugg[0] != "abstract art" {
		t.Errorf("suggestions = %v", sugg)
	}

	trending, err := c.Trending(ctx, 1)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(trending) != 1 || trending[0] != "abstract painting" {
		t.Errorf("trending = %v", trending)
	}
}

func TestHealth(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}

	c = newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := c.Health(context.Background()); !errors.Is(err, ErrUnhealthy) {
		t.Fatalf("err = %v, want ErrUnhealthy", err)
	}
}
