package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"movie-manager/internal/models"
	"movie-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func newStreamServer(s *service.Service) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsCatalog)
	return httptest.NewServer(r)
}

func wsURL(srv *httptest.Server, query url.Values) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query.Encode()
	return u.String()
}

func TestWebSocketCatalog_InitialAndPeriodic(t *testing.T) {
	owner := &models.User{ID: 7, Username: "bob"}
	auth := &mockAuth{authUser: owner}
	mov := &mockMovies{listResp: []models.Movie{
		{ID: 5, Title: "Dune", Year: intPtr(2021), UserID: 7},
	}}
	s := &service.Service{Authorization: auth, Movies: mov}

	srv := newStreamServer(s)
	defer srv.Close()

	q := url.Values{}
	q.Set("token", "valid")
	q.Set("interval_ms", "20") // fast ticks for the test

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, q), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "movies" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var list []models.Movie
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("unmarshal movies: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Dune" {
		t.Fatalf("unexpected movies: %+v", list)
	}
	if mov.lastOwner != 7 {
		t.Fatalf("list owner: got %d, want 7", mov.lastOwner)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "movies" {
		t.Fatalf("expected type=movies, got %+v", env)
	}
	if auth.lastAuthToken != "valid" {
		t.Fatalf("Authenticate got %q, want %q", auth.lastAuthToken, "valid")
	}
}

func TestWebSocketCatalog_RejectsBadToken(t *testing.T) {
	auth := &mockAuth{authErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth, Movies: &mockMovies{}}

	srv := newStreamServer(s)
	defer srv.Close()

	q := url.Values{}
	q.Set("token", "bogus")

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, resp, err := dialer.Dial(wsURL(srv, q), nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for a bad token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}

func TestWebSocketCatalog_InitialListError_Closes(t *testing.T) {
	owner := &models.User{ID: 7, Username: "bob"}
	auth := &mockAuth{authUser: owner}
	mov := &mockMovies{listErr: errors.New("boom")}
	s := &service.Service{Authorization: auth, Movies: mov}

	srv := newStreamServer(s)
	defer srv.Close()

	q := url.Values{}
	q.Set("token", "valid")

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, q), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close right after the initial list fails.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
