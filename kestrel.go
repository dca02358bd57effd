// Package kestrel provides the public API for the Kestrel HTTP server.
//
// This is the recommended import for applications:
//
//	import "github.com/kestrel-web/kestrel"
//
// Usage:
//
//	srv := kestrel.New(nil)
//	srv.Register("/hello", func(req *kestrel.Request, sess *kestrel.Session) *kestrel.Response {
//		return kestrel.Text("Hello, World!")
//	})
//	if err := srv.Run(); err != nil {
//		log.Fatal(err)
//	}
package kestrel

import (
	"log/slog"

	"github.com/kestrel-web/kestrel/pkg/httpwire"
	"github.com/kestrel-web/kestrel/pkg/router"
	"github.com/kestrel-web/kestrel/pkg/server"
	"github.com/kestrel-web/kestrel/pkg/session"
	"github.com/kestrel-web/kestrel/pkg/static"
	"github.com/kestrel-web/kestrel/pkg/template"
)

// Request is a parsed HTTP request handed to handlers.
type Request = httpwire.Request

// Response is a handler result awaiting serialization.
type Response = httpwire.Response

// Session is the per-request session handle handed to handlers.
type Session = session.Handle

// Handler processes one request.
type Handler = router.Handler

// Server accepts connections and dispatches requests.
type Server = server.Server

// Config configures a Server.
type Config = server.Config

// New creates a Server; nil means all defaults.
var New = server.New

// DefaultConfig returns the default server configuration.
var DefaultConfig = server.DefaultConfig

// Response constructors.
var (
	Text        = httpwire.Text
	HTML        = httpwire.HTML
	Redirect    = httpwire.Redirect
	NotFound    = httpwire.NotFound
	BadRequest  = httpwire.BadRequest
	ServerError = httpwire.ServerError
)

// ParseForm decodes a URL-encoded POST body.
var ParseForm = httpwire.ParseForm

// Render substitutes $name placeholders in a template file.
var Render = template.Render

// RenderHTML renders a template file into a 200 HTML response. A render
// failure (missing file, unresolved placeholder) is logged and mapped to
// the canned 500 response instead of escaping the handler.
func RenderHTML(path string, vars map[string]string) *Response {
	out, err := template.Render(path, vars)
	if err != nil {
		slog.Default().Error("template render failed", "path", path, "error", err)
		return httpwire.ServerError()
	}
	return httpwire.HTML(out)
}

// StaticDir serves static files from a local directory; mount it with
// Server.Mount.
var StaticDir = static.NewDir
