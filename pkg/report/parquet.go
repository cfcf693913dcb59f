package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/eunmann/du-hist/pkg/stack"
)

// StackedRow is the Parquet schema for the machine-readable export: one
// record per (date, root) pair with the cumulative retained size.
type StackedRow struct {
	Date            string `parquet:"date"`
	Root            string `parquet:"root"`
	CumulativeBytes int64  `parquet:"cumulative_bytes"`
}

// WriteParquet writes the stacked dataset as a Parquet file alongside the
// text report, for downstream analysis tooling. The placeholder dataset
// produces an empty file with the schema intact.
func (w *Writer) WriteParquet(res stack.Result) (string, error) {
	path := filepath.Join(w.OutDir, w.FileBase()+".parquet")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create parquet file %s: %w", path, err)
	}

	pw := parquet.NewGenericWriter[StackedRow](f)
	records := flattenRows(res)
	if len(records) > 0 {
		if _, err := pw.Write(records); err != nil {
			f.Close()
			return "", fmt.Errorf("write parquet rows to %s: %w", path, err)
		}
	}
	if err := pw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("close parquet writer for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close parquet file %s: %w", path, err)
	}
	return path, nil
}

func flattenRows(res stack.Result) []StackedRow {
	if res.Placeholder {
		return nil
	}
	records := make([]StackedRow, 0, len(res.Rows)*len(res.Roots))
	for _, row := range res.Rows {
		for i, root := range res.Roots {
			records = append(records, StackedRow{
				Date:            row.Date,
				Root:            root,
				CumulativeBytes: row.Values[i],
			})
		}
	}
	return records
}
