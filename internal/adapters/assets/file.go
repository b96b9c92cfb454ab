package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PabloGalante/life-guide/internal/domain"
)

// FileFetcher reads custom backgrounds from a single directory tree.
// Paths are resolved inside the root; anything escaping it is refused.
type FileFetcher struct {
	root     *os.Root
	maxBytes int64
}

// NewFileFetcher opens dir as the sandbox root, creating it if needed.
func NewFileFetcher(dir string, maxBytes int64) (*FileFetcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open assets dir: %w", err)
	}
	return &FileFetcher{root: root, maxBytes: maxBytes}, nil
}

func (f *FileFetcher) Fetch(ctx context.Context, ref string) (domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Asset{}, err
	}

	name := filepath.Clean(strings.TrimPrefix(ref, "file://"))
	file, err := f.root.Open(name)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("open %s: %w", ref, err)
	}
	defer file.Close()

	data, err := readLimited(file, f.maxBytes)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("read %s: %w", ref, err)
	}

	return domain.Asset{Data: data, ContentType: contentTypeFor(name)}, nil
}

func (f *FileFetcher) Close() error {
	return f.root.Close()
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
