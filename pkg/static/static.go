// Package static resolves request paths to static file contents.
//
// A Source abstracts where the bytes live: Dir serves from a local
// directory, S3Source from an S3 bucket. The server mounts sources under
// URL prefixes and consults them after route lookup misses.
package static

import (
	"context"
	"errors"
	"mime"
	"path"
	"strings"
)

// ErrNotFound is returned by a Source when no file exists for the
// requested path. The server maps it to a 404.
var ErrNotFound = errors.New("static: file not found")

// Source provides static file contents by relative path.
type Source interface {
	// Open returns the contents of the named file. The name is a cleaned
	// slash-separated path relative to the source root, never absolute.
	Open(ctx context.Context, name string) ([]byte, error)
}

// Mount binds a Source to a public URL prefix.
type Mount struct {
	// Prefix is the public URL prefix, e.g. "/static/".
	Prefix string

	Source Source
}

// Resolve maps a request path to a relative file name inside the mount.
// It reports false when the path is outside the prefix or fails the
// traversal checks.
func (m *Mount) Resolve(requestPath string) (string, bool) {
	prefix := m.Prefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(requestPath, prefix) {
		return "", false
	}
	return sanitizeRelPath(strings.TrimPrefix(requestPath, prefix))
}

// sanitizeRelPath rejects traversal and absolute-path tricks so a source
// can never be asked for a file outside its root.
func sanitizeRelPath(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path
	// attempt (e.g. "/static//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts and changing the meaning of the request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}
	return clean, true
}

// ContentType guesses a MIME type from the file extension. Unknown
// extensions fall back to application/octet-stream.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
