package httpwire

import (
	"errors"
	"strings"
	"testing"
)

func TestReadRequest_GET(t *testing.T) {
	raw := "GET /hello HTTP/1.1\r\nHost: localhost\r\nUser-Agent: test\r\n\r\n"
	req, err := ReadRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if req.Method != MethodGet {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.Path != "/hello" {
		t.Errorf("Path = %q, want /hello", req.Path)
	}
	if got := req.Header.Get("Host"); got != "localhost" {
		t.Errorf("Header.Get(Host) = %q, want localhost", got)
	}
	if req.Body != "" {
		t.Errorf("Body = %q, want empty", req.Body)
	}
}

func TestReadRequest_POSTBody(t *testing.T) {
	raw := "POST /login HTTP/1.1\r\nContent-Length: 26\r\n\r\nusername=bob&password=1234"
	req, err := ReadRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if req.Method != MethodPost {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.Body != "username=bob&password=1234" {
		t.Errorf("Body = %q", req.Body)
	}
}

func TestReadRequest_LFOnlyLines(t *testing.T) {
	// Lenient clients sometimes send bare LF line endings.
	raw := "GET / HTTP/1.1\nHost: localhost\n\n"
	req, err := ReadRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if req.Path != "/" {
		t.Errorf("Path = %q, want /", req.Path)
	}
}

func TestReadRequest_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty request line", "\r\n\r\n", ErrMalformedRequestLine},
		{"two fields", "GET /\r\n\r\n", ErrMalformedRequestLine},
		{"bad method", "BREW /pot HTTP/1.1\r\n\r\n", ErrUnsupportedMethod},
		{"relative path", "GET hello HTTP/1.1\r\n\r\n", ErrMalformedRequestLine},
		{"bad version", "GET / SPDY/3\r\n\r\n", ErrMalformedRequestLine},
		{"header without colon", "GET / HTTP/1.1\r\nbroken header\r\n\r\n", ErrMalformedHeader},
		{"bad content length", "POST / HTTP/1.1\r\nContent-Length: many\r\n\r\n", ErrMalformedHeader},
		{"negative content length", "POST / HTTP/1.1\r\nContent-Length: -4\r\n\r\n", ErrMalformedHeader},
		{"truncated body", "POST / HTTP/1.1\r\nContent-Length: 50\r\n\r\nshort", ErrTruncatedBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequest(strings.NewReader(tt.raw))
			if err == nil {
				t.Fatalf("ReadRequest() succeeded, want %v", tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadRequest() error = %v, want %v", err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("ReadRequest() error is not a *ParseError: %v", err)
			}
		})
	}
}

func TestRequest_Cookie(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nCookie: theme=dark; session_id=abc123; lang=en\r\n\r\n"
	req, err := ReadRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if tok := req.SessionToken(); tok != "abc123" {
		t.Errorf("SessionToken() = %q, want abc123", tok)
	}
	if v, ok := req.Cookie("theme"); !ok || v != "dark" {
		t.Errorf("Cookie(theme) = %q, %v", v, ok)
	}
	if _, ok := req.Cookie("missing"); ok {
		t.Error("Cookie(missing) reported present")
	}
}

func TestRequest_NoCookieHeader(t *testing.T) {
	raw := "GET / HTTP/1.1\r\n\r\n"
	req, err := ReadRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadRequest() error: %v", err)
	}
	if tok := req.SessionToken(); tok != "" {
		t.Errorf("SessionToken() = %q, want empty", tok)
	}
}
