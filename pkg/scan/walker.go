package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eunmann/du-hist/internal/logctx"
	"github.com/eunmann/du-hist/pkg/logging"
)

// DateLayout is the calendar-date granularity used for bucketing.
const DateLayout = "2006-01-02"

// Walker traverses a root directory, applying Filter to every entry and
// folding included file sizes into an Aggregator, bucketed by modification
// date. Traversal is sequential and depth-first.
type Walker struct {
	Filter *Filter

	// Follow resolves symbolic links and traverses them as their target
	// type. When false, symlinks are neither descended into nor counted.
	Follow bool

	// Progress, if set, is updated for every included file.
	Progress *logging.ScanProgress
}

// Traverse walks rootPath and accumulates into agg. A rootPath that does not
// exist or is not a directory is skipped silently; the return value reports
// whether the root was actually scanned.
func (w *Walker) Traverse(ctx context.Context, rootPath string, agg *Aggregator) bool {
	log := logctx.FromContext(ctx)

	info, err := w.stat(rootPath)
	if err != nil || !info.IsDir() {
		log.Debug().Str("root", rootPath).Msg("skipping root: not a readable directory")
		return false
	}

	agg.Touch(rootPath)
	w.walk(ctx, rootPath, rootPath, info, agg)
	return true
}

// walk visits path (already stat'ed as info) and recurses into directories.
//
// Pre-visit subtree pruning on exclusion is only available when symlinks are
// not followed: under follow mode an excluded directory is still descended
// into, and its contents are excluded entry by entry. This costs extra
// traversal work under follow mode but produces identical data.
func (w *Walker) walk(ctx context.Context, root, path string, info fs.FileInfo, agg *Aggregator) {
	log := logctx.FromContext(ctx)

	if info.IsDir() {
		if !w.Follow && w.Filter.Excluded(path) {
			return
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("unreadable directory, skipping")
			return
		}
		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			childInfo, err := w.stat(child)
			if err != nil {
				// Broken symlink or stat failure: excluded.
				log.Debug().Str("path", child).Err(err).Msg("stat failed, entry excluded")
				continue
			}
			w.walk(ctx, root, child, childInfo, agg)
		}
		return
	}

	if !w.Filter.Included(path, info) {
		return
	}

	date := info.ModTime().Local().Format(DateLayout)
	agg.Add(root, date, info.Size())
	if w.Progress != nil {
		w.Progress.Record(info.Size())
	}
}

// stat resolves symlinks when Follow is set, otherwise reports the link itself.
func (w *Walker) stat(path string) (fs.FileInfo, error) {
	if w.Follow {
		return os.Stat(path)
	}
	return os.Lstat(path)
}
