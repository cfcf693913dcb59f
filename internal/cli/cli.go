// Package cli implements the command-line interface for du-hist.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/eunmann/du-hist/internal/logctx"
	"github.com/eunmann/du-hist/pkg/logging"
	"github.com/eunmann/du-hist/pkg/report"
	"github.com/eunmann/du-hist/pkg/scan"
	"github.com/eunmann/du-hist/pkg/stack"
	"github.com/eunmann/du-hist/pkg/sysdisk"
)

const (
	// DefaultOutputBaseDir is the fixed temp-area base under which
	// timestamped run directories are created.
	DefaultOutputBaseDir = "/tmp/du-hist"

	// DefaultLabel is the placeholder label embedded in output file names
	// when --label-files is not given.
	DefaultLabel = "unnamed"
)

const usage = "usage: du-hist [options] DIR [DIR...]"

// options holds the parsed command-line configuration.
type options struct {
	outputBaseDir string
	outputDir     string
	maxAgeSeconds int64
	excludes      []string
	labelFiles    string
	follow        bool
	parquet       bool
	debug         bool
	pretty        bool
	roots         []string
}

// stringList collects repeated flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logging.Init(opts.debug, opts.pretty)
	return run(opts)
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	var excludes stringList

	fs := flag.NewFlagSet("du-hist", flag.ContinueOnError)
	fs.StringVar(&opts.outputBaseDir, "output-base-dir", DefaultOutputBaseDir,
		"base directory for timestamped run directories")
	fs.StringVar(&opts.outputDir, "output-dir", "",
		"explicit output directory, overrides the base-dir/timestamp scheme")
	fs.Int64Var(&opts.maxAgeSeconds, "max-age", 0,
		"exclude files older than this many seconds (0 disables)")
	fs.Var(&excludes, "exclude",
		"exclusion regexp tested against full paths (repeatable)")
	fs.StringVar(&opts.labelFiles, "label-files", DefaultLabel,
		"label embedded in output file names")
	fs.BoolVar(&opts.follow, "follow", false,
		"follow symbolic links during traversal")
	fs.BoolVar(&opts.parquet, "parquet", false,
		"also write a Parquet export of the stacked table")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.pretty, "pretty", false, "human-friendly log output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.excludes = excludes

	// An explicitly empty --output-dir is a configuration error, distinct
	// from the flag being absent.
	outputDirSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "output-dir" {
			outputDirSet = true
		}
	})
	if outputDirSet && opts.outputDir == "" {
		return nil, errors.New("--output-dir must not be empty")
	}

	opts.roots = fs.Args()
	if len(opts.roots) == 0 {
		return nil, errors.New(usage + "\nat least one directory is required")
	}

	return opts, nil
}

// resolveOutputDir determines and creates the run output directory.
func resolveOutputDir(opts *options, now time.Time) (string, error) {
	dir := opts.outputDir
	if dir == "" {
		dir = filepath.Join(opts.outputBaseDir, "run-"+now.Format("20060102-150405"))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return dir, nil
}

func run(opts *options) error {
	start := time.Now()
	log := logging.WithPhase("scan")

	// Run token replaces pid-based output-name uniqueness.
	token := uuid.NewString()[:8]

	filter, err := scan.NewFilter(opts.excludes, time.Duration(opts.maxAgeSeconds)*time.Second)
	if err != nil {
		return err
	}

	outDir, err := resolveOutputDir(opts, start)
	if err != nil {
		return err
	}

	progress := logging.NewScanProgress(log)
	walker := &scan.Walker{
		Filter:   filter,
		Follow:   opts.follow,
		Progress: progress,
	}
	agg := scan.NewAggregator()

	ctx := logctx.WithLogger(context.Background(), log.With().Str("run_token", token).Logger())
	scanned := 0
	for _, root := range opts.roots {
		if walker.Traverse(logctx.WithStr(ctx, "root", root), root, agg) {
			scanned++
		}
	}

	res := stack.Stack(agg.Buckets(), agg.Totals())

	writer := &report.Writer{OutDir: outDir, Token: token, Label: opts.labelFiles}
	paths, err := writer.WriteAll(res)
	if err != nil {
		return err
	}
	if opts.parquet {
		if _, err := writer.WriteParquet(res); err != nil {
			return err
		}
	}

	summaryLog := logging.WithPhase("summary")
	summary := summaryLog.Info().
		Str("run_token", token).
		Int("roots_given", len(opts.roots)).
		Int("roots_scanned", scanned).
		Str("files", humanize.Comma(progress.Files())).
		Int64("total_bytes", progress.Bytes()).
		Str("total_bytes_h", humanize.Bytes(uint64(progress.Bytes()))).
		Dur("elapsed", time.Since(start)).
		Str("data_file", paths.Data).
		Str("plot_file", paths.Plot)
	if free := sysdisk.Avail(outDir); free.Reliable {
		summary = summary.Str("output_fs_avail", humanize.Bytes(free.AvailBytes))
	}
	summary.Msg("run complete")

	return nil
}
