package tcp

import (
	"context"
	"net"
)

type ServerOptions struct {
	addr    string
	handler ConnHandler

	errorLogFunc ErrorLogFunc
	baseContext  func(net.Listener) context.Context
	connContext  func(ctx context.Context, c net.Conn) context.Context
}

type ServerOption func(opts *ServerOptions)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}
	if opt.errorLogFunc == nil {
		opt.errorLogFunc = DefaultErrorLogFunc
	}
	return opt
}

func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

func WithConnHandler(h ConnHandler) ServerOption {
	return func(opts *ServerOptions) {
		opts.handler = h
	}
}

func WithErrorLogFunc(f ErrorLogFunc) ServerOption {
	return func(opts *ServerOptions) {
		opts.errorLogFunc = f
	}
}

func WithBaseContextFunc(f func(net.Listener) context.Context) ServerOption {
	return func(opts *ServerOptions) {
		opts.baseContext = f
	}
}

func WithConnContextFunc(f func(ctx context.Context, c net.Conn) context.Context) ServerOption {
	return func(opts *ServerOptions) {
		opts.connContext = f
	}
}
