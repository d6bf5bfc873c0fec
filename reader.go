package trand

import "encoding/binary"

// Reader streams the little-endian bytes of a generator's output
// words. It never fails and never runs dry. Like the engines it is
// single-owner; wrap in a SyncReader to share.
type Reader struct {
	src Source64
	buf [8]byte
	n   int // unread bytes left in buf
}

// NewReader turns a 64-bit generator into an endless byte stream.
func NewReader(src Source64) *Reader {
	return &Reader{src: src}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.n == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.src.Uint64())
			r.n = 8
		}
		c := copy(p[n:], r.buf[8-r.n:])
		n += c
		r.n -= c
	}
	return n, nil
}
