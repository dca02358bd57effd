package static

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMount_Resolve(t *testing.T) {
	m := &Mount{Prefix: "/static/"}

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/static/app.css", "app.css", true},
		{"/static/img/logo.png", "img/logo.png", true},
		{"/other/app.css", "", false},
		{"/static/", "", false},
		{"/static/../secret", "", false},
		{"/static/a/../../secret", "", false},
		{"/static//etc/passwd", "", false},
		{"/static/./hidden", "", false},
		{"/static/a\\b", "", false},
		{"/static/a\x00b", "", false},
	}
	for _, tt := range tests {
		got, ok := m.Resolve(tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMount_ResolvePrefixWithoutSlash(t *testing.T) {
	m := &Mount{Prefix: "/assets"}
	if got, ok := m.Resolve("/assets/site.js"); !ok || got != "site.js" {
		t.Errorf("Resolve() = %q, %v", got, ok)
	}
	// "/assetsite.js" must not match a "/assets" mount.
	if _, ok := m.Resolve("/assetsite.js"); ok {
		t.Error("Resolve() matched outside the prefix")
	}
}

func TestDir_Open(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "css", "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDir(root)
	ctx := context.Background()

	data, err := d.Open(ctx, "css/app.css")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if string(data) != "body{}" {
		t.Errorf("Open() = %q", data)
	}

	if _, err := d.Open(ctx, "missing.css"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := d.Open(ctx, "css"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open(directory) error = %v, want ErrNotFound", err)
	}
}

func TestContentType(t *testing.T) {
	if ct := ContentType("app.css"); ct != "text/css; charset=utf-8" {
		t.Errorf("ContentType(app.css) = %q", ct)
	}
	if ct := ContentType("blob.weird"); ct != "application/octet-stream" {
		t.Errorf("ContentType(blob.weird) = %q", ct)
	}
}
