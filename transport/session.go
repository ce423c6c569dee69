package transport

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"rsocket-codec/frame"
)

// SessionConfig configures a Session. Fields are plain constructor
// parameters rather than a loaded config file, matching the teacher's
// style of taking explicit arguments (NewClientTransport(conn, codec),
// RateLimitMiddleware(r, burst)) instead of a config struct read from disk.
type SessionConfig struct {
	// KeepAliveInterval is how often this side sends a KEEPALIVE frame.
	KeepAliveInterval time.Duration
	// KeepAliveTimeout is how long to wait for the peer's traffic before
	// declaring the session dead. Zero disables the timeout check.
	KeepAliveTimeout time.Duration
	// Logger receives structured session events. A nil Logger falls back
	// to zap.NewNop().
	Logger *zap.Logger
	// Handler processes every inbound frame other than LEASE and KEEPALIVE,
	// which are handled internally and never reach Handler.
	Handler HandlerFunc
}

// Session owns one Conn and drives its read loop, its keepalive ticker, and
// lease-gated sends, generalizing the teacher's ClientTransport (recvLoop
// goroutine dispatching by sequence number + heartbeatLoop goroutine) from
// a request/response RPC multiplexer to RSocket's frame-oriented session.
type Session struct {
	conn   *Conn
	cfg    SessionConfig
	logger *zap.Logger
	lease  *Lease

	writeMu sync.Mutex // serializes WriteFrame the way ClientTransport.sending did

	lastReceived   atomicTime
	closeOnce      sync.Once
	closed         chan struct{}
	handlerChain   HandlerFunc
}

// NewSession wraps conn and starts its background goroutines. Call Close
// to stop them and release the connection.
func NewSession(conn *Conn, cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := cfg.Handler
	if handler == nil {
		handler = func(ctx context.Context, f *frame.Frame) (*frame.Frame, error) { return nil, nil }
	}

	s := &Session{
		conn:   conn,
		cfg:    cfg,
		logger: logger,
		lease:  NewLease(),
		closed: make(chan struct{}),
	}
	s.handlerChain = Chain(RecoverInterceptor(), LoggingInterceptor(logger))(handler)
	s.lastReceived.Store(time.Now())

	go s.readLoop()
	if cfg.KeepAliveInterval > 0 {
		go s.keepAliveLoop()
	}
	return s
}

// Close stops the session's goroutines and closes the underlying
// connection. Safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return s.conn.Close()
}

// Done returns a channel closed when the session has stopped.
func (s *Session) Done() <-chan struct{} { return s.closed }

// SendRequest writes a request-shaped frame (REQUEST_RESPONSE, REQUEST_FNF,
// REQUEST_STREAM, REQUEST_CHANNEL) after waiting for the lease to allow it.
func (s *Session) SendRequest(ctx context.Context, f *frame.Frame) error {
	if err := s.lease.Wait(ctx); err != nil {
		return err
	}
	return s.writeFrame(f)
}

// Send writes any frame without consulting the lease, for control frames
// (CANCEL, REQUEST_N, PAYLOAD continuations) that must never be throttled.
func (s *Session) Send(f *frame.Frame) error {
	return s.writeFrame(f)
}

func (s *Session) writeFrame(f *frame.Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteFrame(f)
}

// readLoop is the single reader goroutine: frame parsing is stateful
// (accumulated tail bytes) so exactly one goroutine may call
// conn.ReadFrame, the same invariant the teacher's recvLoop comment
// documents for protocol.Decode over a shared net.Conn.
func (s *Session) readLoop() {
	ctx := context.Background()
	for {
		f, err := s.conn.ReadFrame()
		if err != nil {
			s.logger.Info("session read loop exiting", zap.Error(err))
			s.Close()
			return
		}
		s.lastReceived.Store(time.Now())

		switch f.Type {
		case frame.TypeKeepalive:
			if f.Flags.Has(frame.FlagRespond) {
				_ = s.Send(&frame.Frame{
					Type:                 frame.TypeKeepalive,
					LastReceivedPosition: f.LastReceivedPosition,
				})
			}
		case frame.TypeLease:
			s.lease.Grant(f)
		default:
			reply, err := s.handlerChain(ctx, f)
			if err != nil {
				s.logger.Warn("handler error", zap.Error(err))
				continue
			}
			if reply != nil {
				if werr := s.Send(reply); werr != nil {
					s.logger.Warn("failed to write reply frame", zap.Error(werr))
				}
			}
		}
	}
}

// keepAliveLoop periodically emits KEEPALIVE frames and, if a timeout is
// configured, closes the session once the peer has been silent too long.
// Directly generalizes the teacher's heartbeatLoop from a fixed no-op
// heartbeat frame to RSocket's KEEPALIVE with the RESPOND flag set. The
// session tracks no resume position, so the frames it sends carry a
// LastReceivedPosition of 0.
func (s *Session) keepAliveLoop() {
	ticker := time.NewTicker(s.cfg.KeepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.closed:
			return
		case <-ticker.C:
			if s.cfg.KeepAliveTimeout > 0 && time.Since(s.lastReceived.Load()) > s.cfg.KeepAliveTimeout {
				s.logger.Warn("keepalive timeout, closing session")
				s.Close()
				return
			}
			err := s.Send(&frame.Frame{
				Type:  frame.TypeKeepalive,
				Flags: frame.FlagRespond,
			})
			if err != nil {
				s.logger.Info("keepalive write failed, closing session", zap.Error(err))
				s.Close()
				return
			}
		}
	}
}

// atomicTime is a tiny mutex-guarded time.Time, avoiding an import of
// sync/atomic's typed wrappers for a single timestamp field.
type atomicTime struct {
	mu sync.Mutex
	t  time.Time
}

func (a *atomicTime) Store(t time.Time) {
	a.mu.Lock()
	a.t = t
	a.mu.Unlock()
}

func (a *atomicTime) Load() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.t
}
