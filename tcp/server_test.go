package tcp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"testing"
	"time"
)

type echoHandler struct {
	t *testing.T
}

func (h *echoHandler) ServeTCP(ctx context.Context, conn Conn) {
	bufr := conn.BufferReader()
	bufw := conn.BufferWriter()

	for {
		ln, _, err := bufr.ReadLine()
		if err != nil {
			return
		}

		bufw.WriteString("OK " + string(ln) + "\n")
		bufw.Flush()
		h.t.Logf("%s", string(ln))
	}
}

func newTestServer(t *testing.T) (*Server, net.Listener, chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	server := NewServer(
		WithConnHandler(NewRawTCPConnHandler(&echoHandler{t: t})),
		WithErrorLogFunc(t.Logf),
	)
	done := make(chan error, 1)
	go func() { done <- server.Serve(ln) }()
	return server, ln, done
}

func TestServe(t *testing.T) {
	server, ln, done := newTestServer(t)

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprintf(conn, "hello\n")
	resp, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if resp != "OK hello\n" {
		t.Fatalf("resp = %q", resp)
	}
	conn.Close()

	server.Close()
	if err := <-done; err != ErrServerClosed {
		t.Fatalf("Serve returned %v", err)
	}
}

func TestShutdown(t *testing.T) {
	server, ln, done := newTestServer(t)

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprintf(conn, "ping\n")
	if _, err := bufio.NewReader(conn).ReadString('\n'); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != ErrServerClosed {
		t.Fatalf("Serve returned %v", err)
	}

	// New serves must be refused after shutdown.
	if err := server.ListenAndServe(); err != ErrServerClosed {
		t.Fatalf("ListenAndServe returned %v", err)
	}
}

func TestConnStateString(t *testing.T) {
	states := []ConnState{StateNew, StateActive, StateIdle, StateClosed}
	names := []string{"new", "active", "idle", "closed"}
	for i, st := range states {
		if st.String() != names[i] {
			t.Fatalf("state %d = %q", i, st.String())
		}
	}
}
