package media

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

//nolint:gochecknoglobals // immutable lookup tables used across the package.
var (
	mediaExtensions = map[string]struct{}{
		".mp3":  {},
		".m4a":  {},
		".flac": {},
		".ogg":  {},
		".wav":  {},
		".mp4":  {},
		".mov":  {},
		".mkv":  {},
		".webm": {},
	}

	skippedDirs = map[string]struct{}{
		".git":         {},
		"node_modules": {},
		".cache":       {},
	}
)

// IsMediaFile reports whether the path has a recognized media extension.
func IsMediaFile(path string) bool {
	_, ok := mediaExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Discover walks root and returns the media files beneath it, sorted by
// path. Unreadable entries are skipped rather than failing the walk.
func Discover(ctx context.Context, root string) ([]string, error) {
	// fastwalk runs the callback from multiple goroutines.
	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.DefaultConfig
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			return nil
		}
		if IsMediaFile(path) {
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
