package httpwire

import (
	"fmt"
	"io"
	"strings"
)

// Status codes emitted by the server.
const (
	StatusOK          = 200
	StatusFound       = 302
	StatusSeeOther    = 303
	StatusBadRequest  = 400
	StatusNotFound    = 404
	StatusServerError = 500
)

var reasonPhrases = map[int]string{
	StatusOK:          "OK",
	StatusFound:       "Found",
	StatusSeeOther:    "See Other",
	StatusBadRequest:  "Bad Request",
	StatusNotFound:    "Not Found",
	StatusServerError: "Internal Server Error",
}

// ReasonPhrase returns the reason phrase for a status code.
func ReasonPhrase(status int) string {
	if phrase, ok := reasonPhrases[status]; ok {
		return phrase
	}
	return "Unknown"
}

// Response is a handler result awaiting serialization. Construct one with
// Text, HTML, File, Redirect, NotFound, BadRequest or ServerError and hand
// it back from a handler.
type Response struct {
	Status      int
	Body        string
	ContentType string

	// Location is set for redirect responses only.
	Location string

	cookieName  string
	cookieValue string
}

// Text returns a 200 response with a plain text body.
func Text(body string) *Response {
	return &Response{Status: StatusOK, Body: body}
}

// HTML returns a 200 response with an HTML body, typically a rendered
// template.
func HTML(body string) *Response {
	return &Response{Status: StatusOK, Body: body, ContentType: "text/html"}
}

// File returns a 200 response carrying static file content.
func File(content []byte, contentType string) *Response {
	return &Response{Status: StatusOK, Body: string(content), ContentType: contentType}
}

// Redirect returns a 302 response pointing the client at location.
func Redirect(location string) *Response {
	return &Response{Status: StatusFound, Location: location}
}

// NotFound returns the canned 404 response.
func NotFound() *Response {
	return &Response{Status: StatusNotFound, Body: "Resource not found"}
}

// BadRequest returns the canned 400 response sent for unparseable requests.
func BadRequest() *Response {
	return &Response{Status: StatusBadRequest, Body: "Bad request"}
}

// ServerError returns the canned 500 response. Handler panics and template
// failures are converted into this.
func ServerError() *Response {
	return &Response{Status: StatusServerError, Body: "Internal server error"}
}

// SetCookie attaches a Set-Cookie header to the response. The server calls
// this exactly once, when the request minted a fresh session.
func (r *Response) SetCookie(name, value string) {
	r.cookieName = name
	r.cookieValue = value
}

// HasCookie reports whether a Set-Cookie header will be emitted.
func (r *Response) HasCookie() bool { return r.cookieName != "" }

// WriteTo serializes the response to w: status line, headers with an exact
// Content-Length, a blank line, then the body.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", r.Status, ReasonPhrase(r.Status))
	if r.Location != "" {
		fmt.Fprintf(&b, "Location: %s\r\n", r.Location)
	}
	if r.cookieName != "" {
		fmt.Fprintf(&b, "Set-Cookie: %s=%s; HttpOnly\r\n", r.cookieName, r.cookieValue)
	}
	if r.ContentType != "" {
		fmt.Fprintf(&b, "Content-Type: %s\r\n", r.ContentType)
	}
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	b.WriteString("Connection: close\r\n")
	b.WriteString("\r\n")
	b.WriteString(r.Body)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
