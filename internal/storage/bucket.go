// Package storage stores media files under a bucket directory and
// hands back their public address.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

type Bucket struct {
	dir     string
	baseURL string
}

func NewBucket(dir, baseURL string) (*Bucket, error) {
	if err := os.MkdirAll(dir, 0o755); nil != err {
		return nil, fmt.Errorf("unable to create bucket directory: %w", err)
	}
	return &Bucket{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Store writes a media file into the bucket and returns its public
// URL. The name is sanitized and prefixed with a timestamp so repeated
// uploads of the same file never collide; a same-instant collision is
// retried with a counter. Backend errors propagate.
func (b *Bucket) Store(r io.Reader, name string) (string, error) {
	return b.storeAt(r, name, time.Now().UnixNano())
}

func (b *Bucket) storeAt(r io.Reader, name string, stamp int64) (string, error) {
	name = sanitizeName(name)
	key := fmt.Sprintf("%d-%s", stamp, name)
	f, err := os.OpenFile(filepath.Join(b.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	for i := 1; nil != err && os.IsExist(err); i++ {
		key = fmt.Sprintf("%d.%d-%s", stamp, i, name)
		f, err = os.OpenFile(filepath.Join(b.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if nil != err {
		return "", fmt.Errorf("unable to create bucket file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); nil != err {
		return "", fmt.Errorf("unable to write bucket file: %w", err)
	}
	return b.baseURL + "/" + key, nil
}

// sanitizeName normalizes a filename and replaces everything that is
// not alphanumeric, keeping the extension separator.
func sanitizeName(name string) string {
	ext := path.Ext(name)
	base := clean(strings.TrimSuffix(name, ext))
	if base == "" {
		base = "file"
	}
	if ext != "" {
		base += "." + cleanExt(strings.TrimPrefix(ext, "."))
	}
	return base
}

func clean(s string) string {
	var out strings.Builder
	for _, r := range norm.NFKD.String(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r > 0x7f:
			// combining marks and anything else outside ascii are
			// dropped rather than replaced
		default:
			out.WriteRune('-')
		}
	}
	return out.String()
}

func cleanExt(s string) string {
	return strings.Trim(clean(s), "-")
}
