// Package httpwire implements the wire codec for the Kestrel server: it
// parses raw bytes read from a TCP connection into a structured Request and
// serializes a Response back into HTTP/1.1 bytes.
//
// The codec is deliberately small. It understands GET and POST, CRLF-delimited
// headers, Content-Length framed bodies, and nothing else: no chunked
// transfer, no keep-alive, no continuation lines. Parsing is a pure transform
// over the reader it is given; it never touches shared state.
package httpwire
