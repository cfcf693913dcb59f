// Package report serializes a stacked dataset into the data table and
// gnuplot control script consumed by the rendering step.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eunmann/du-hist/pkg/fileutil"
	"github.com/eunmann/du-hist/pkg/humanfmt"
	"github.com/eunmann/du-hist/pkg/stack"
)

// Writer emits the report files for one run. Output file names embed the run
// token and label: <token>_<label>.dat, <token>_<label>.gp and so on.
type Writer struct {
	OutDir string
	Token  string
	Label  string
}

// Paths holds the locations of the emitted artifacts.
type Paths struct {
	Data  string
	Plot  string
	Image string
}

// FileBase returns the token-prefixed base name shared by all output files.
func (w *Writer) FileBase() string {
	return w.Token + "_" + w.Label
}

// WriteAll writes the data table and the gnuplot script. Any open or write
// failure is fatal and identifies the failing path.
func (w *Writer) WriteAll(res stack.Result) (Paths, error) {
	paths := Paths{
		Data:  filepath.Join(w.OutDir, w.FileBase()+".dat"),
		Plot:  filepath.Join(w.OutDir, w.FileBase()+".gp"),
		Image: filepath.Join(w.OutDir, w.FileBase()+".png"),
	}

	if err := writeFile(paths.Data, DataTable(res)); err != nil {
		return Paths{}, err
	}
	if err := writeFile(paths.Plot, PlotScript(res, paths)); err != nil {
		return Paths{}, err
	}
	return paths, nil
}

// DataTable renders the whitespace-delimited table: one line per date in
// ascending order, first column the date, then one cumulative value per
// root in display order.
func DataTable(res stack.Result) string {
	var b strings.Builder
	for _, row := range res.Rows {
		b.WriteString(row.Date)
		for _, v := range row.Values {
			fmt.Fprintf(&b, " %d", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PlotScript renders the gnuplot control script: one filled series per root
// in descending-total order. The clause for the i-th root plots the sum of
// its own column and every smaller root's column, so curves stack and the
// topmost line is total space used.
func PlotScript(res stack.Result, paths Paths) string {
	var b strings.Builder
	fmt.Fprintf(&b, "set terminal png size 1200,800\n")
	fmt.Fprintf(&b, "set output '%s'\n", filepath.Base(paths.Image))
	b.WriteString("set xdata time\n")
	b.WriteString("set timefmt \"%Y-%m-%d\"\n")
	b.WriteString("set format x \"%Y-%m-%d\"\n")
	b.WriteString("set xtics rotate by -45\n")
	b.WriteString("set ylabel \"bytes retained\"\n")
	b.WriteString("set key left top\n")
	b.WriteString("plot \\\n")

	data := filepath.Base(paths.Data)
	if res.Placeholder {
		fmt.Fprintf(&b, "\t'%s' using 1:($2) with filledcurves x1 title 'no data (%s)'\n",
			data, humanfmt.Sci(0))
		return b.String()
	}

	for i, root := range res.Roots {
		title := fmt.Sprintf("%s (%s)", root, humanfmt.Sci(res.Totals[root]))
		fmt.Fprintf(&b, "\t'%s' using 1:(%s) with filledcurves x1 title '%s'",
			data, columnSum(i, len(res.Roots)), title)
		if i < len(res.Roots)-1 {
			b.WriteString(", \\")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// columnSum builds the gnuplot column expression for root index i of n:
// the sum of data columns i+2 through n+1.
func columnSum(i, n int) string {
	terms := make([]string, 0, n-i)
	for col := i + 2; col <= n+1; col++ {
		terms = append(terms, fmt.Sprintf("$%d", col))
	}
	return strings.Join(terms, "+")
}

func writeFile(path, content string) error {
	err := fileutil.WriteTmpThenMove(path, func(tmpPath string) error {
		return os.WriteFile(tmpPath, []byte(content), 0644)
	})
	if err != nil {
		return fmt.Errorf("write report file %s: %w", path, err)
	}
	return nil
}
