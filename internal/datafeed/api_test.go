package datafeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("  "); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestFetchLatestAndSnapshot(t *testing.T) {
	var pointerToken, snapshotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/latest.json":
			pointerToken = r.URL.Query().Get("v")
			w.Write([]byte(`{"url":"./data/20250826.json","date":"2025-08-26","file":"20250826.json"}`))
		case "/data/20250826.json":
			snapshotToken = r.URL.Query().Get("v")
			w.Write([]byte(`{"boxOfficeResult":{"dailyBoxOfficeList":[]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithClock(fixedClock(1756166400)))
	if err != nil {
		t.Fatal(err)
	}

	ptr, err := c.FetchLatest(context.Background())
	if err != nil {
		t.Fatalf("FetchLatest: %v", err)
	}
	if ptr.URL != "./data/20250826.json" || ptr.Date != "2025-08-26" || ptr.File != "20250826.json" {
		t.Errorf("unexpected pointer %+v", ptr)
	}

	body, err := c.FetchSnapshot(context.Background(), ptr.URL)
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if !strings.Contains(string(body), "dailyBoxOfficeList") {
		t.Errorf("unexpected snapshot body %q", body)
	}

	// Both requests carry the same cache-busting token.
	if pointerToken != "1756166400" {
		t.Errorf("pointer request token = %q, want 1756166400", pointerToken)
	}
	if snapshotToken != "1756166400" {
		t.Errorf("snapshot request token = %q, want 1756166400", snapshotToken)
	}
}

func TestFetchLatestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.FetchLatest(context.Background())
	if !errors.Is(err, ErrPointerNotFound) {
		t.Fatalf("expected ErrPointerNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "latest.json을 찾을 수 없습니다.") {
		t.Errorf("error message should be user-facing, got %q", err.Error())
	}
}

func TestFetchLatestInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	if _, err := c.FetchLatest(context.Background()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFetchSnapshotServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.FetchSnapshot(context.Background(), "./data/20250826.json")

	var se *SnapshotError
	if !errors.As(err, &se) {
		t.Fatalf("expected SnapshotError, got %v", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", se.StatusCode)
	}
	if !strings.Contains(se.URL, "/data/20250826.json") {
		t.Errorf("error URL = %q, want the attempted snapshot URL", se.URL)
	}
	if !strings.Contains(err.Error(), se.URL) {
		t.Errorf("message %q must carry the attempted URL", err.Error())
	}
}

func TestFetchSnapshotInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	if _, err := c.FetchSnapshot(context.Background(), "./data/20250826.json"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFetchDatedSkipsCacheBusting(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/20250826.json" {
			http.NotFound(w, r)
			return
		}
		query = r.URL.RawQuery
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	body, err := c.FetchDated(context.Background(), "20250826")
	if err != nil {
		t.Fatalf("FetchDated: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("unexpected body %q", body)
	}
	if query != "" {
		t.Errorf("dated fetch must not carry a cache-busting token, got query %q", query)
	}
}

func TestFetchDatedNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.FetchDated(context.Background(), "19700101")
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Fatalf("expected an HTTP 404 error, got %v", err)
	}
}

func TestResolveAgainstPathPrefix(t *testing.T) {
	c, err := NewClient("https://example.github.io/k-movie-archive/")
	if err != nil {
		t.Fatal(err)
	}

	u, err := c.resolve("./data/20250826.json")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.String(); got != "https://example.github.io/k-movie-archive/data/20250826.json" {
		t.Errorf("resolved URL = %q", got)
	}
}
