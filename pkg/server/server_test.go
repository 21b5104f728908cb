package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/config"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/query"
)

type stubAnswerer struct {
	answer   string
	err      error
	question string
}

func (s *stubAnswerer) Answer(ctx context.Context, question string) (string, error) {
	s.question = question
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 5001,
			Mode: "test",
		},
	}
}

func TestNew(t *testing.T) {
	server := New(testConfig(), nil)
	if server == nil {
		t.Fatal("expected non-nil server")
	}
}

func TestSetup(t *testing.T) {
	server := New(testConfig(), nil)
	server.Setup()

	if server.router == nil {
		t.Error("expected router to be initialized")
	}
	if server.server == nil {
		t.Error("expected http.Server to be initialized")
	}
	if server.server.Addr != "localhost:5001" {
		t.Errorf("unexpected addr %s", server.server.Addr)
	}
}

func TestLivenessEndpoint(t *testing.T) {
	server := New(testConfig(), nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func postQuery(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestQueryEndpoint(t *testing.T) {
	answerer := &stubAnswerer{answer: "Maria Garcia leads Project Alpha."}
	server := New(testConfig(), answerer)
	server.Setup()

	w := postQuery(t, server, `{"query": "Who leads Project Alpha?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	body := decodeBody(t, w)
	if body["answer"] != "Maria Garcia leads Project Alpha." {
		t.Errorf("unexpected answer: %q", body["answer"])
	}
	if answerer.question != "Who leads Project Alpha?" {
		t.Errorf("unexpected question passed through: %q", answerer.question)
	}
}

func TestQueryEndpointMissingQuestion(t *testing.T) {
	answerer := &stubAnswerer{err: query.ErrMissingQuestion}
	server := New(testConfig(), answerer)
	server.Setup()

	for _, body := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`} {
		w := postQuery(t, server, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected status %d, got %d", body, http.StatusBadRequest, w.Code)
			continue
		}
		resp := decodeBody(t, w)
		if resp["error"] == "" {
			t.Errorf("body %s: expected an error message", body)
		}
	}
}

func TestQueryEndpointMalformedBody(t *testing.T) {
	server := New(testConfig(), &stubAnswerer{})
	server.Setup()

	w := postQuery(t, server, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestQueryEndpointServiceError(t *testing.T) {
	answerer := &stubAnswerer{err: errors.New("graph query failed")}
	server := New(testConfig(), answerer)
	server.Setup()

	w := postQuery(t, server, `{"query": "anything"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "graph query failed" {
		t.Errorf("unexpected error body: %q", body["error"])
	}
}

func TestQueryEndpointNilAnswerer(t *testing.T) {
	server := New(testConfig(), nil)
	server.Setup()

	w := postQuery(t, server, `{"query": "anything"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := New(testConfig(), nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS allow-origin header")
	}
}
