// Package walker enumerates candidate files for a scan. The engine
// itself takes a flat ordered file list; this package produces that
// list from directories, preferring the git index when the root is a
// worktree so only versioned files are scanned.
package walker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// Options controls file enumeration.
type Options struct {
	// Excludes are glob patterns matched against the path relative to
	// the walk root.
	Excludes []string

	// UseGit lists git-tracked files instead of walking when the root
	// contains a repository.
	UseGit bool
}

// Walker enumerates files under scan roots.
type Walker struct {
	opts   Options
	logger *zap.Logger
}

// New creates a Walker.
func New(opts Options, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{opts: opts, logger: logger}
}

// Collect expands each path: files pass through as-is, directories are
// enumerated. The returned list is deterministic: per-root order is
// sorted, roots keep their given order.
func (w *Walker) Collect(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		files, err := w.collectDir(p)
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}

func (w *Walker) collectDir(root string) ([]string, error) {
	if w.opts.UseGit {
		if files, ok := w.gitTracked(root); ok {
			return files, nil
		}
	}
	return w.walk(root)
}

// gitTracked lists files from the repository index. Returns ok=false
// when root is not a worktree, letting the caller fall back to a plain
// walk.
func (w *Walker) gitTracked(root string) ([]string, bool) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, false
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		w.logger.Warn("failed to read git index, walking instead",
			zap.String("root", root), zap.Error(err))
		return nil, false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, false
	}
	base := wt.Filesystem.Root()

	var files []string
	for _, e := range idx.Entries {
		path := filepath.Join(base, filepath.FromSlash(e.Name))
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			// Tracked file outside the requested root.
			continue
		}
		if w.excluded(rel) {
			continue
		}
		if !scannable(path) {
			continue
		}
		files = append(files, path)
	}

	w.logger.Debug("enumerated git-tracked files",
		zap.String("root", root), zap.Int("count", len(files)))
	return files, true
}

func (w *Walker) walk(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}
		if info.IsDir() {
			if info.Name() == ".git" || w.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if w.excluded(rel) || !scannable(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (w *Walker) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.opts.Excludes {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// scannable sniffs the first bytes for NULs to skip binaries early,
// before the file reaches the scan pipeline.
func scannable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		// Leave unreadable files in place; the scanner records them
		// as per-file read failures.
		return true
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	for _, b := range buf[:n] {
		if b == 0 {
			return false
		}
	}
	return true
}
