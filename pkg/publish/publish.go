package publish

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"strings"

	"github.com/bloxi-go/bloxi/internal/config"
	"github.com/bloxi-go/bloxi/internal/errors"
	"github.com/bloxi-go/bloxi/pkg/style"
)

// ErrInvalidKey is returned when an object key is empty or escapes the
// store root.
var ErrInvalidKey = stderrors.New("publish: invalid key")

// CSSContentType is the content type stylesheets are stored with.
const CSSContentType = "text/css; charset=utf-8"

// hashLen is the number of hex digits of the content hash kept in keys.
const hashLen = 12

// Store is the interface for publish backends.
type Store interface {
	// Put writes data under key and returns where it ended up: a file path
	// for disk, an s3:// URL for S3.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Result describes a published stylesheet.
type Result struct {
	// Key is the object key, prefix included.
	Key string

	// Location is what the store returned for the key.
	Location string

	// Hash is the hex content hash embedded in the key.
	Hash string

	// Size is the stylesheet size in bytes.
	Size int
}

// Key returns the content-addressed key for css under prefix. The same
// stylesheet text always maps to the same key.
func Key(prefix, css string) string {
	return prefix + "bloxi-" + contentHash(css) + ".css"
}

// Stylesheet writes the sheet's CSS to store under a content-hashed key.
// Failures come back as E301 errors.
func Stylesheet(ctx context.Context, store Store, sheet *style.Sheet, prefix string) (*Result, error) {
	if sheet == nil {
		sheet = style.NewSheet(nil)
	}
	css := sheet.CSS()
	key := Key(prefix, css)

	loc, err := store.Put(ctx, key, []byte(css), CSSContentType)
	if err != nil {
		return nil, errors.New("E301").
			WithDetail("key " + key).
			Wrap(err)
	}
	return &Result{
		Key:      key,
		Location: loc,
		Hash:     contentHash(css),
		Size:     len(css),
	}, nil
}

// NewStore builds the store named by cfg.Target.
func NewStore(cfg config.PublishConfig) (Store, error) {
	switch cfg.Target {
	case "", config.TargetDisk:
		dir := cfg.Dir
		if dir == "" {
			dir = config.DefaultPublishDir
		}
		store, err := NewDiskStore(dir)
		if err != nil {
			return nil, errors.New("E301").WithDetail("disk store " + dir).Wrap(err)
		}
		return store, nil
	case config.TargetS3:
		if cfg.Bucket == "" {
			return nil, errors.New("E301").
				WithDetail("s3 target without a bucket").
				WithSuggestion("Set publish.bucket in bloxi.json")
		}
		return NewS3Store(NewS3Client(cfg), cfg.Bucket), nil
	default:
		return nil, errors.New("E301").
			WithDetail("unknown publish target " + cfg.Target).
			WithSuggestion("Use one of: disk, s3")
	}
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:hashLen]
}

// cleanKey rejects empty keys and keys that would climb out of the root.
func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	return key, nil
}
