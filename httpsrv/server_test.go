package httpsrv

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func TestRandEndpoint(t *testing.T) {
	s := NewServer(42)

	req := httptest.NewRequest(http.MethodGet, "/api/rand?n=4&width=32", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Success bool         `json:"success"`
		Data    RandResponse `json:"data"`
		Error   string       `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("success = false: %s", resp.Error)
	}
	if resp.Data.Width != 32 {
		t.Fatalf("width = %d", resp.Data.Width)
	}
	if len(resp.Data.Words) != 4 {
		t.Fatalf("words = %d", len(resp.Data.Words))
	}
	for _, w := range resp.Data.Words {
		if !strings.HasPrefix(w, "0x") || len(w) != 10 {
			t.Fatalf("malformed word %q", w)
		}
	}
}

func TestRandVariant(t *testing.T) {
	s := NewServer(42)

	get := func(url string) (bool, RandResponse, string) {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		var resp struct {
			Success bool         `json:"success"`
			Data    RandResponse `json:"data"`
			Error   string       `json:"error"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		return resp.Success, resp.Data, resp.Error
	}

	ok, data, errMsg := get("/api/rand?n=2&variant=setseq_xsh_rr_64_32")
	if !ok {
		t.Fatalf("success = false: %s", errMsg)
	}
	if data.Variant != "setseq_xsh_rr_64_32" || data.Width != 32 {
		t.Fatalf("data = %+v", data)
	}

	// 64-bit default
	ok, data, _ = get("/api/rand?n=2")
	if !ok || data.Width != 64 || len(data.Words[0]) != 18 {
		t.Fatalf("data = %+v", data)
	}

	// Each request draws from a fresh stream.
	_, first, _ := get("/api/rand?n=2")
	_, second, _ := get("/api/rand?n=2")
	if first.Words[0] == second.Words[0] {
		t.Fatal("two requests produced the same words")
	}
}

func TestRandErrors(t *testing.T) {
	s := NewServer(42)

	for _, url := range []string{
		"/api/rand?width=16",
		"/api/rand?variant=bogus",
		"/api/rand?n=0",
		"/api/rand?n=abc",
		"/api/rand?n=1000000",
	} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		var resp APIResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		if resp.Success || resp.Error == "" {
			t.Fatalf("%s: expected error response, got %+v", url, resp)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/rand", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d", rec.Code)
	}
}

func TestBytesEndpoint(t *testing.T) {
	s := NewServer(42)

	fetch := func() []byte {
		req := httptest.NewRequest(http.MethodGet, "/api/bytes?n=64", nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/octet-stream" {
			t.Fatalf("content type = %q", ct)
		}
		b, _ := io.ReadAll(rec.Body)
		if len(b) != 64 {
			t.Fatalf("got %d bytes", len(b))
		}
		return b
	}

	if bytes.Equal(fetch(), fetch()) {
		t.Fatal("two requests produced the same bytes")
	}
}

func TestUUIDEndpoint(t *testing.T) {
	s := NewServer(42)

	req := httptest.NewRequest(http.MethodGet, "/api/uuid?n=3", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var resp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.Data) != 3 {
		t.Fatalf("resp = %+v", resp)
	}
	for _, s := range resp.Data {
		id, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if id.Version() != 4 {
			t.Fatalf("uuid version = %d", id.Version())
		}
	}
}

func TestIndex(t *testing.T) {
	s := NewServer(42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "trand") {
		t.Fatal("index page missing title")
	}

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(NewServer(42))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream?frames=3"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	for i := 0; i < 3; i++ {
		mt, p, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if mt != websocket.BinaryMessage {
			t.Fatalf("frame %d: message type = %d", i, mt)
		}
		if len(p) != streamFrameSize {
			t.Fatalf("frame %d: %d bytes", i, len(p))
		}
		if bytes.Equal(p, make([]byte, len(p))) {
			t.Fatalf("frame %d is all zeros", i)
		}
	}
}
