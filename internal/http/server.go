package http

import (
	"errors"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
)

var ErrServerClosed = errors.New("http: server closed")

// Server accepts connections one at a time. Each connection is read, routed,
// handled and closed before the next one is accepted.
type Server struct {
	Listener net.Listener
	Router   *Router
	// NotFoundHandler, when set, answers requests that match no route.
	// When nil such requests are logged and the connection is closed
	// without a response.
	NotFoundHandler Handler
	// MaxRequestBytes bounds the request line plus headers. Zero means
	// DefaultMaxRequestBytes.
	MaxRequestBytes int
	// Logger receives server events. Nil means slog.Default().
	Logger *slog.Logger
	closed atomic.Bool
	mu     sync.Mutex
}

func NewServer(router *Router) *Server {
	if router == nil {
		router = NewRouter()
	}
	return &Server{Router: router}
}

// ListenAndServe binds address and runs the accept loop in the background.
// A bind failure is returned before anything is served.
func ListenAndServe(address string, router *Router) (*Server, error) {
	if address == "" {
		address = ":http"
	}
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	srv := NewServer(router)
	srv.Listener = ln
	srv.Router.freeze()

	go srv.Serve(ln)
	return srv, nil
}

func (s *Server) HandleGet(path string, handler HandlerFunc) *Server {
	s.Router.HandleGet(path, handler)
	return s
}

func (s *Server) HandlePost(path string, handler HandlerFunc) *Server {
	s.Router.HandlePost(path, handler)
	return s
}

// Serve accepts connections on ln until the server is closed or ln stops
// accepting. It handles each connection to completion before accepting the
// next. Errors from a single connection never stop the loop. If s.Listener is
// unset, ln is recorded there so Close stops the loop.
func (s *Server) Serve(ln net.Listener) error {
	if s.closed.Load() {
		return ErrServerClosed
	}
	if s.Router == nil {
		s.Router = NewRouter()
	}
	s.Router.freeze()

	s.mu.Lock()
	if s.Listener == nil {
		s.Listener = ln
	}
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if s.closed.Load() {
			if conn != nil {
				conn.Close()
			}
			return nil // Graceful exit
		}
		if errors.Is(err, net.ErrClosed) {
			s.logger().Error("listener closed, server stopping", "err", err)
			return err
		}
		if err != nil {
			s.logger().Error("accept failed", "err", err)
			continue
		}
		s.handle(conn)
	}
}

func (s *Server) Close() error {
	s.closed.Store(true)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Listener == nil {
		return nil
	}
	return s.Listener.Close()
}

// Addr returns the listener's address, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Listener == nil {
		return nil
	}
	return s.Listener.Addr()
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	log := s.logger().With("remote", conn.RemoteAddr().String())

	r, err := readRequest(conn, s.maxRequestBytes())
	if err != nil {
		log.Error("reading request failed", "err", err)
		return
	}
	log = log.With("method", r.RequestLine.Method, "target", r.RequestLine.Target)

	handler, ok := s.Router.Resolve(r.Method(), r.RequestLine.Target)
	if !ok {
		log.Warn("no route for request")
		if s.NotFoundHandler == nil {
			return
		}
		handler = s.NotFoundHandler
	}

	defer func() {
		if err := recover(); err != nil {
			log.Error("handler panicked", "panic", err)
		}
	}()

	log.Info("request")
	handler.Handle(newResponse(conn, Headers{}, r))
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Server) maxRequestBytes() int {
	if s.MaxRequestBytes <= 0 {
		return DefaultMaxRequestBytes
	}
	return s.MaxRequestBytes
}

// NotFound writes an empty-bodied 404 Not Found. Assign it to
// Server.NotFoundHandler to answer unmatched requests.
var NotFound = HandlerFunc(func(r *Response) {
	if err := r.WithStatus(StatusNotFound).Write(""); err != nil {
		slog.Error("writing not found response", "err", err)
	}
})
