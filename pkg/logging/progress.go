package logging

import (
	"time"

	"github.com/eunmann/du-hist/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// DefaultProgressInterval is the number of files between progress log lines.
const DefaultProgressInterval = 10_000

// ScanProgress tracks files and bytes seen during traversal and emits a
// progress line every Interval files. Traversal is sequential, so ScanProgress
// is not safe for concurrent use.
type ScanProgress struct {
	files     int64
	bytes     int64
	startTime time.Time
	log       zerolog.Logger

	// Interval is the file count between progress lines.
	Interval int64
}

// NewScanProgress creates a progress tracker for one scan run.
func NewScanProgress(log zerolog.Logger) *ScanProgress {
	return &ScanProgress{
		startTime: time.Now(),
		log:       log,
		Interval:  DefaultProgressInterval,
	}
}

// Record counts one included file of the given size.
func (p *ScanProgress) Record(size int64) {
	p.files++
	p.bytes += size

	if p.Interval > 0 && p.files%p.Interval == 0 {
		e := p.log.Info().
			Str("event", "scan_progress").
			Int64("files", p.files).
			Int64("bytes", p.bytes).
			Int64("elapsed_ms", p.Elapsed().Milliseconds())
		if IsPrettyMode() {
			e = e.Str("bytes_h", humanfmt.Bytes(p.bytes)).
				Str("elapsed_h", humanfmt.Duration(p.Elapsed()))
		}
		e.Msg("scan progress")
	}
}

// Files returns the number of files recorded so far.
func (p *ScanProgress) Files() int64 {
	return p.files
}

// Bytes returns the total bytes recorded so far.
func (p *ScanProgress) Bytes() int64 {
	return p.bytes
}

// Elapsed returns time since tracking started.
func (p *ScanProgress) Elapsed() time.Duration {
	return time.Since(p.startTime)
}
