package tcp

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ConnState represents the state of a server side connection
type ConnState int

// connection states
const (
	StateNew ConnState = iota
	StateActive
	StateIdle
	StateClosed
)

var stateName = map[ConnState]string{
	StateNew:    "new",
	StateActive: "active",
	StateIdle:   "idle",
	StateClosed: "closed",
}

func (c ConnState) String() string {
	return stateName[c]
}

// Conn is the handler side view of a server connection
type Conn interface {
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
	BufferReader() *bufio.Reader
	BufferWriter() *bufio.Writer
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

var _ Conn = (*conn)(nil)

type conn struct {
	rwc  net.Conn
	bufr *bufio.Reader
	bufw *bufio.Writer

	curState   struct{ atomic uint64 } // packed (unixtime<<8|uint8(ConnState))
	onSetState func(state ConnState)
}

func (c *conn) LocalAddr() net.Addr {
	return c.rwc.LocalAddr()
}

func (c *conn) RemoteAddr() net.Addr {
	return c.rwc.RemoteAddr()
}

func (c *conn) BufferReader() *bufio.Reader {
	return c.bufr
}

func (c *conn) BufferWriter() *bufio.Writer {
	return c.bufw
}

func (c *conn) SetReadDeadline(t time.Time) error {
	return c.rwc.SetReadDeadline(t)
}

func (c *conn) SetWriteDeadline(t time.Time) error {
	return c.rwc.SetWriteDeadline(t)
}

func (c *conn) Close() error {
	return c.rwc.Close()
}

func (c *conn) setState(state ConnState) {
	if state < StateNew || state > StateClosed {
		panic("internal error: bad connection state")
	}
	packedState := uint64(time.Now().Unix()<<8) | uint64(state)
	atomic.StoreUint64(&c.curState.atomic, packedState)
	if hook := c.onSetState; hook != nil {
		hook(state)
	}
}

func (c *conn) getState() (state ConnState, unixSec int64) {
	packedState := atomic.LoadUint64(&c.curState.atomic)
	return ConnState(packedState & 0xff), int64(packedState >> 8)
}

func (c *conn) serve(ctx context.Context, h ConnHandler, logf ErrorLogFunc) {
	c.setState(StateActive)
	defer func() {
		if err := recover(); err != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			logf("trand/tcp: panic serving %v: %v\n%s", c.rwc.RemoteAddr(), err, buf)
		}
		c.rwc.Close()
		c.setState(StateClosed)
	}()

	c.bufr = bufio.NewReader(c.rwc)
	c.bufw = bufio.NewWriter(c.rwc)

	if h != nil {
		h.ServeConn(ctx, c)
	}
	c.setState(StateIdle)
}

var (
	uniqNameMu   sync.Mutex
	uniqNameNext = make(map[string]int)
)

type loggingConn struct {
	name string
	net.Conn
}

func newLoggingConn(baseName string, c net.Conn) net.Conn {
	uniqNameMu.Lock()
	defer uniqNameMu.Unlock()
	uniqNameNext[baseName]++
	return &loggingConn{
		name: fmt.Sprintf("%s-%d", baseName, uniqNameNext[baseName]),
		Conn: c,
	}
}

func (c *loggingConn) Write(p []byte) (n int, err error) {
	log.Printf("%s.Write(%d) = ....", c.name, len(p))
	n, err = c.Conn.Write(p)
	log.Printf("%s.Write(%d) = %d, %v", c.name, len(p), n, err)
	return
}

func (c *loggingConn) Read(p []byte) (n int, err error) {
	log.Printf("%s.Read(%d) = ....", c.name, len(p))
	n, err = c.Conn.Read(p)
	log.Printf("%s.Read(%d) = %d, %v", c.name, len(p), n, err)
	return
}

func (c *loggingConn) Close() (err error) {
	log.Printf("%s.Close() = ...", c.name)
	err = c.Conn.Close()
	log.Printf("%s.Close() = %v", c.name, err)
	return
}
