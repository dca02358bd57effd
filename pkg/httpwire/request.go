package httpwire

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// SessionCookie is the cookie name that carries the session token.
const SessionCookie = "session_id"

// Header holds request headers keyed by lower-cased field name.
// Duplicate fields keep the last value seen.
type Header map[string]string

// Get returns the value for a header field, matched case-insensitively.
func (h Header) Get(key string) string {
	return h[strings.ToLower(key)]
}

// Request is a parsed HTTP request. It is immutable once constructed and
// owned by the connection goroutine that parsed it.
type Request struct {
	Method Method
	Path   string
	Header Header
	Body   string
}

// Cookie returns the value of the named cookie from the Cookie header.
func (r *Request) Cookie(name string) (string, bool) {
	raw := r.Header.Get("Cookie")
	if raw == "" {
		return "", false
	}
	for _, part := range strings.Split(raw, ";") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && kv[0] == name {
			return kv[1], true
		}
	}
	return "", false
}

// SessionToken returns the session token carried by the default session
// cookie, or "" when the client sent none.
func (r *Request) SessionToken() string {
	tok, _ := r.Cookie(SessionCookie)
	return tok
}

// ReadRequest parses one complete HTTP request from r.
//
// It reads the request line, then headers up to the empty line, then a body
// of exactly Content-Length bytes when one is declared. Any framing problem
// is reported as a *ParseError.
func ReadRequest(r io.Reader) (*Request, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	line, err := readLine(br)
	if err != nil {
		return nil, &ParseError{Op: "read request line", Err: err}
	}
	method, path, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	header, err := readHeaders(br)
	if err != nil {
		return nil, err
	}

	body, err := readBody(br, header)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method: method,
		Path:   path,
		Header: header,
		Body:   body,
	}, nil
}

func parseRequestLine(line string) (Method, string, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return "", "", &ParseError{Op: "parse request line " + strconv.Quote(line), Err: ErrMalformedRequestLine}
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return "", "", err
	}
	path := fields[1]
	if !strings.HasPrefix(path, "/") {
		return "", "", &ParseError{Op: "parse path " + strconv.Quote(path), Err: ErrMalformedRequestLine}
	}
	if !strings.HasPrefix(fields[2], "HTTP/") {
		return "", "", &ParseError{Op: "parse version " + strconv.Quote(fields[2]), Err: ErrMalformedRequestLine}
	}
	return method, path, nil
}

func readHeaders(br *bufio.Reader) (Header, error) {
	header := make(Header)
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, &ParseError{Op: "read headers", Err: err}
		}
		if line == "" {
			return header, nil
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			return nil, &ParseError{Op: "parse header " + strconv.Quote(line), Err: ErrMalformedHeader}
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		header[key] = strings.TrimSpace(kv[1])
	}
}

func readBody(br *bufio.Reader, header Header) (string, error) {
	raw := header.Get("Content-Length")
	if raw == "" {
		return "", nil
	}
	length, err := strconv.Atoi(raw)
	if err != nil || length < 0 {
		return "", &ParseError{Op: "parse content-length " + strconv.Quote(raw), Err: ErrMalformedHeader}
	}
	if length == 0 {
		return "", nil
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(br, body); err != nil {
		return "", &ParseError{Op: "read body", Err: ErrTruncatedBody}
	}
	return string(body), nil
}

// readLine reads one CRLF- or LF-terminated line, without the terminator.
func readLine(br *bufio.Reader) (string, error) {
	var line []byte
	for {
		l, more, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if line == nil && !more {
			return string(l), nil
		}
		line = append(line, l...)
		if !more {
			return string(line), nil
		}
	}
}
