package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kestrel-web/kestrel/pkg/router"
	"github.com/kestrel-web/kestrel/pkg/session"
	"github.com/kestrel-web/kestrel/pkg/static"
)

// Server accepts TCP connections and drives the request pipeline for each.
type Server struct {
	config *Config
	logger *slog.Logger

	routes *router.Table
	store  *session.Store
	mounts []*static.Mount

	metrics *metrics
	tracer  trace.Tracer

	mu       sync.Mutex
	listener net.Listener
	closed   bool

	// wg tracks in-flight connection goroutines for Shutdown.
	wg sync.WaitGroup
}

// New creates a Server with the given configuration. A nil config means all
// defaults.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.fillDefaults()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	s := &Server{
		config: config,
		logger: logger,
		routes: router.New(),
		store:  session.NewStore(),
	}
	if config.Metrics != nil {
		s.metrics = newMetrics(config.Metrics)
	}
	if config.TracerName != "" {
		s.tracer = otel.Tracer(config.TracerName)
	}
	return s
}

// Register binds a path to a handler. Registration must happen before Serve;
// the route table is read without locking while serving. Registering a path
// twice replaces the earlier handler.
func (s *Server) Register(path string, handler router.Handler) {
	s.routes.Register(path, handler)
}

// Mount serves static files from source under the given URL prefix. Mounts
// are consulted in order, after route lookup misses, for GET requests only.
func (s *Server) Mount(prefix string, source static.Source) {
	s.mounts = append(s.mounts, &static.Mount{Prefix: prefix, Source: source})
}

// Sessions returns the server's session store.
func (s *Server) Sessions() *session.Store {
	return s.store
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Listen binds the configured address. A bind failure is the only error
// class that prevents the server from starting.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return ErrAlreadyServing
	}
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.listener = l
	s.logger.Info("listening", "address", l.Addr().String())
	return nil
}

// Addr returns the bound listener address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until the listener is closed, spawning one
// goroutine per connection. It returns ErrServerClosed after Shutdown.
func (s *Server) Serve() error {
	s.mu.Lock()
	l := s.listener
	s.mu.Unlock()
	if l == nil {
		return ErrNotListening
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return ErrServerClosed
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.logger.Warn("accept timeout", "error", err)
				continue
			}
			return err
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// Run binds the address and serves. It is the usual entry point:
//
//	srv := server.New(nil)
//	srv.Register("/hello", hello)
//	if err := srv.Run(); err != nil && !errors.Is(err, server.ErrServerClosed) {
//		log.Fatal(err)
//	}
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting connections and waits for in-flight ones to
// finish, up to ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	l := s.listener
	s.mu.Unlock()

	if l != nil {
		if err := l.Close(); err != nil {
			s.logger.Warn("listener close failed", "error", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("shutdown complete")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
