package transport

import (
	"fmt"
	"net"

	"go.uber.org/zap"

	"rsocket-codec/encoding"
	"rsocket-codec/frame"
)

// Listener accepts connections and performs the RSocket SETUP handshake on
// each before handing back a live Session. Generalizes the teacher's
// Server.Accept loop (one goroutine per accepted connection, each wrapped
// in its own transport) from the mini-rpc framing to RSocket's requirement
// that every new connection's first frame be SETUP.
type Listener struct {
	raw     net.Listener
	enc     *encoding.Set
	logger  *zap.Logger
	handler HandlerFunc
}

// ListenerConfig configures a Listener, constructor-parameter style.
type ListenerConfig struct {
	Encoder *encoding.Set
	Logger  *zap.Logger
	Handler HandlerFunc
}

// Listen wraps raw and returns a Listener ready to Accept connections.
func Listen(raw net.Listener, cfg ListenerConfig) *Listener {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{raw: raw, enc: cfg.Encoder, logger: logger, handler: cfg.Handler}
}

// Accept blocks for one incoming connection, performs the SETUP handshake,
// and returns the resulting Session. Callers typically call this in a loop
// from a dedicated goroutine, spawning further handling per Session.
func (l *Listener) Accept() (*Session, *frame.Frame, error) {
	raw, err := l.raw.Accept()
	if err != nil {
		return nil, nil, err
	}

	conn := NewConn(raw, l.enc)
	setup, err := conn.ReadFrame()
	if err != nil {
		raw.Close()
		return nil, nil, fmt.Errorf("transport: reading SETUP: %w", err)
	}
	if setup.Type != frame.TypeSetup {
		raw.Close()
		return nil, nil, fmt.Errorf("transport: first frame was %s, want SETUP", setup.Type)
	}

	session := NewSession(conn, SessionConfig{
		KeepAliveInterval: 0, // server side responds to KEEPALIVE, doesn't initiate
		Logger:            l.logger,
		Handler:           l.handler,
	})
	return session, setup, nil
}

// Close stops accepting new connections.
func (l *Listener) Close() error { return l.raw.Close() }

// Dial connects to addr, sends the given SETUP frame, and returns a live
// Session. Generalizes the teacher's client-side NewClientTransport(conn,
// codec) constructor to include the RSocket handshake.
func Dial(network, addr string, setup *frame.Frame, cfg SessionConfig) (*Session, error) {
	raw, err := net.Dial(network, addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial: %w", err)
	}
	conn := NewConn(raw, nil)
	if err := conn.WriteFrame(setup); err != nil {
		raw.Close()
		return nil, fmt.Errorf("transport: writing SETUP: %w", err)
	}
	return NewSession(conn, cfg), nil
}
