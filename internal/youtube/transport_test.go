package youtube

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// flakyServer fails the first `failures` requests with 503 and records what it saw.
type flakyServer struct {
	mu       sync.Mutex
	failures int
	hits     int
	agents   []string
	bodies   []string
}

func (s *flakyServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.hits++
	s.agents = append(s.agents, r.Header.Get("User-Agent"))
	s.bodies = append(s.bodies, string(body))
	fail := s.hits <= s.failures
	s.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	_, _ = io.WriteString(w, "ok")
}

func (s *flakyServer) seen() (hits int, agents, bodies []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, append([]string(nil), s.agents...), append([]string(nil), s.bodies...)
}

func newTestClient(cfg Config) *Client {
	c := NewClient(cfg)
	c.rt.backoff = 0
	return c
}

func TestRetryTransport_RetriesServerErrors(t *testing.T) {
	tests := []struct {
		name       string
		retries    int
		failures   int
		wantHits   int
		wantStatus int
	}{
		{"first attempt succeeds", 2, 0, 1, http.StatusOK},
		{"recovers within budget", 2, 2, 3, http.StatusOK},
		{"gives up after budget", 1, 5, 2, http.StatusServiceUnavailable},
		{"no retries", 0, 1, 1, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &flakyServer{failures: tt.failures}
			srv := httptest.NewServer(fs)
			defer srv.Close()

			c := newTestClient(Config{Retries: tt.retries})
			resp, err := c.yt.HTTPClient.Get(srv.URL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if hits, _, _ := fs.seen(); hits != tt.wantHits {
				t.Errorf("expected %d hits, got %d", tt.wantHits, hits)
			}
		})
	}
}

func TestRetryTransport_ReplaysBody(t *testing.T) {
	fs := &flakyServer{failures: 1}
	srv := httptest.NewServer(fs)
	defer srv.Close()

	c := newTestClient(Config{Retries: 1})
	resp, err := c.yt.HTTPClient.Post(srv.URL, "application/json", strings.NewReader(`{"videoId":"dQw4w9WgXcQ"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	hits, _, bodies := fs.seen()
	if hits != 2 {
		t.Fatalf("expected 2 hits, got %d", hits)
	}
	for i, body := range bodies {
		if body != `{"videoId":"dQw4w9WgXcQ"}` {
			t.Errorf("attempt %d sent body %q", i+1, body)
		}
	}
}

func TestRetryTransport_UserAgent(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{"configured value replaces the library's", "custom/2.0", "custom/2.0"},
		{"library value kept when unset", "", "library/1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &flakyServer{}
			srv := httptest.NewServer(fs)
			defer srv.Close()

			c := newTestClient(Config{UserAgent: tt.configured})
			req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("User-Agent", "library/1.0")

			resp, err := c.yt.HTTPClient.Do(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			resp.Body.Close()

			if _, agents, _ := fs.seen(); len(agents) != 1 || agents[0] != tt.want {
				t.Errorf("expected User-Agent %q, got %v", tt.want, agents)
			}
		})
	}
}
