package static

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	objects map[string]string
	lastKey string
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = *params.Key
	body, ok := f.objects[*params.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3Source_Open(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"public/site.js": "console.log(1)"}}
	src := NewS3Source(fake, "assets", "public/")
	ctx := context.Background()

	data, err := src.Open(ctx, "site.js")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if string(data) != "console.log(1)" {
		t.Errorf("Open() = %q", data)
	}
	if fake.lastKey != "public/site.js" {
		t.Errorf("requested key = %q, want prefix applied", fake.lastKey)
	}
}

func TestS3Source_NotFound(t *testing.T) {
	src := NewS3Source(&fakeS3{objects: map[string]string{}}, "assets", "")
	if _, err := src.Open(context.Background(), "missing.js"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}
