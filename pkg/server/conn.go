package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"runtime/debug"
	"time"

	"github.com/kestrel-web/kestrel/pkg/httpwire"
	"github.com/kestrel-web/kestrel/pkg/router"
	"github.com/kestrel-web/kestrel/pkg/session"
	"github.com/kestrel-web/kestrel/pkg/static"
)

// handleConn runs the whole pipeline for one connection: read and parse the
// request, dispatch it, write the response, close. Exactly one request per
// connection; there is no keep-alive.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	s.metrics.connOpened()
	defer s.metrics.connClosed()

	if t := s.config.ReadTimeout; t > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(t))
	}

	req, err := httpwire.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		s.metrics.recordParseError()
		s.logger.Debug("request rejected", "remote", conn.RemoteAddr().String(), "error", err)
		s.writeResponse(conn, httpwire.BadRequest())
		return
	}

	resp := s.dispatch(context.Background(), req)
	s.writeResponse(conn, resp)
}

func (s *Server) writeResponse(conn net.Conn, resp *httpwire.Response) {
	if t := s.config.WriteTimeout; t > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(t))
	}
	if _, err := resp.WriteTo(conn); err != nil {
		s.logger.Debug("response write failed", "remote", conn.RemoteAddr().String(), "error", err)
	}
}

// dispatch matches the request against the route table and invokes the
// handler, or falls back to static mounts. Route misses never invoke a
// handler.
func (s *Server) dispatch(ctx context.Context, req *httpwire.Request) *httpwire.Response {
	start := time.Now()
	ctx, span := s.startSpan(ctx, req)

	var resp *httpwire.Response
	if handler, ok := s.routes.Lookup(req.Path); ok {
		resp = s.invoke(handler, req)
	} else if req.Method == httpwire.MethodGet && len(s.mounts) > 0 {
		resp = s.serveStatic(ctx, req.Path)
	} else {
		resp = httpwire.NotFound()
	}

	duration := time.Since(start)
	s.logger.Info("request",
		"method", req.Method.String(),
		"path", req.Path,
		"status", resp.Status,
		"duration", duration,
	)
	s.metrics.recordRequest(req.Path, resp.Status, duration)
	endSpan(span, resp)
	return resp
}

// invoke resolves the request's session and runs the handler. A token the
// store does not know is treated as no token at all: the client is
// anonymous, not an error. A panicking handler is converted into a 500; it
// must never take down the accept loop or other connections.
func (s *Server) invoke(handler router.Handler, req *httpwire.Request) *httpwire.Response {
	token, _ := req.Cookie(s.config.CookieName)
	if token != "" && !s.store.Contains(token) {
		token = ""
	}
	h := session.NewHandle(s.store, token)

	resp := s.safeCall(handler, req, h)
	if resp == nil {
		s.logger.Error("handler returned nil response", "path", req.Path)
		resp = httpwire.ServerError()
	}
	if h.Fresh() {
		resp.SetCookie(s.config.CookieName, h.Token())
		s.metrics.recordSessionMinted()
	}
	return resp
}

func (s *Server) safeCall(handler router.Handler, req *httpwire.Request, h *session.Handle) (resp *httpwire.Response) {
	defer func() {
		if r := recover(); r != nil {
			herr := &HandlerError{Path: req.Path, Panic: r, Stack: debug.Stack()}
			s.logger.Error("handler panic", "path", req.Path, "panic", r, "stack", string(herr.Stack))
			resp = httpwire.ServerError()
		}
	}()
	return handler(req, h)
}

// serveStatic tries each mount in registration order.
func (s *Server) serveStatic(ctx context.Context, path string) *httpwire.Response {
	for _, m := range s.mounts {
		rel, ok := m.Resolve(path)
		if !ok {
			continue
		}
		data, err := m.Source.Open(ctx, rel)
		if errors.Is(err, static.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("static source failed", "path", path, "error", err)
			return httpwire.ServerError()
		}
		return httpwire.File(data, static.ContentType(rel))
	}
	return httpwire.NotFound()
}
