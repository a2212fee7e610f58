package facebook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_PagePosts_FollowsCursors(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != "tok" {
			t.Fatalf("missing access token: %s", r.URL.String())
		}
		switch r.URL.Query().Get("after") {
		case "":
			fmt.Fprintf(w, `{"data":[{"id":"p1","message":"first"},{"id":"p2"}],"paging":{"next":%q}}`,
				srv.URL+"/page-1/posts?access_token=tok&after=cursor-2")
		case "cursor-2":
			fmt.Fprint(w, `{"data":[{"id":"p3"}]}`)
		default:
			t.Fatalf("unexpected cursor: %s", r.URL.String())
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	posts, err := c.PagePosts(context.Background(), "page-1", "tok")
	if err != nil {
		t.Fatalf("PagePosts returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts across pages, got %d", len(posts))
	}
	if posts[0].ID != "p1" || posts[0].Message != "first" || posts[2].ID != "p3" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestClient_PagePosts_CapsCursorFollowing(t *testing.T) {
	var hits int
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		// Always point at another page; the client must stop on its own.
		fmt.Fprintf(w, `{"data":[{"id":"p%d"}],"paging":{"next":%q}}`, hits,
			srv.URL+fmt.Sprintf("/page-1/posts?access_token=tok&after=c%d", hits))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	posts, err := c.PagePosts(context.Background(), "page-1", "tok")
	if err != nil {
		t.Fatalf("PagePosts returned error: %v", err)
	}
	if hits != maxFeedPages {
		t.Fatalf("expected %d requests, got %d", maxFeedPages, hits)
	}
	if len(posts) != maxFeedPages {
		t.Fatalf("expected %d posts, got %d", maxFeedPages, len(posts))
	}
}

func TestClient_PageFollowers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/page-1") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("fields") != "followers_count" {
			t.Fatalf("unexpected fields: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"followers_count":4321,"id":"page-1"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	n, err := c.PageFollowers(context.Background(), "page-1", "tok")
	if err != nil {
		t.Fatalf("PageFollowers returned error: %v", err)
	}
	if n != 4321 {
		t.Fatalf("expected 4321 followers, got %d", n)
	}
}

func TestClient_GraphErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.PagePosts(context.Background(), "page-1", "bad-token")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid OAuth access token") || !strings.Contains(err.Error(), "code 190") {
		t.Fatalf("expected graph error details, got %v", err)
	}
}

func TestClient_InstagramTotals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/ig-1/insights") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("metric_type") != "total_value" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"data":[
			{"name":"likes","description":"likes on media","total_value":{"value":120}},
			{"name":"comments","total_value":{"value":34}}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	totals, err := c.InstagramTotals(context.Background(), "ig-1", "tok")
	if err != nil {
		t.Fatalf("InstagramTotals returned error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(totals))
	}
	if totals[0].Name != "likes" || totals[0].TotalValue != 120 {
		t.Fatalf("unexpected metric: %+v", totals[0])
	}
	if totals[1].Name != "comments" || totals[1].TotalValue != 34 {
		t.Fatalf("unexpected metric: %+v", totals[1])
	}
}
