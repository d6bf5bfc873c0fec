package crypt

import (
	"io"
)

// EncoderOptions is the option bag of a concrete encoder. Implementations
// assert it to their own type.
type EncoderOptions interface{}

// DecoderOptions is the option bag of a concrete decoder.
type DecoderOptions interface{}

// EncoderOption sets an option of NewEncoder
type EncoderOption func(opts EncoderOptions)

// DecoderOption sets an option of NewDecoder
type DecoderOption func(opts DecoderOptions)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}
