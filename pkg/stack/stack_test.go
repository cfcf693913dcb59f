package stack

import (
	"reflect"
	"testing"

	"github.com/eunmann/du-hist/pkg/scan"
)

func TestStackTwoRoots(t *testing.T) {
	// A: 1000 bytes on 2020-01-01, 2000 bytes on 2020-01-02.
	// B: 5000 bytes on 2020-01-01.
	buckets := map[string]scan.DateBuckets{
		"/a": {"2020-01-01": 1000, "2020-01-02": 2000},
		"/b": {"2020-01-01": 5000},
	}
	totals := map[string]int64{"/a": 3000, "/b": 5000}

	res := Stack(buckets, totals)

	if res.Placeholder {
		t.Fatal("unexpected placeholder result")
	}
	if want := []string{"/b", "/a"}; !reflect.DeepEqual(res.Roots, want) {
		t.Fatalf("Roots = %v, want %v (descending total)", res.Roots, want)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(res.Rows))
	}

	// Ascending date order; values per root in display order (/b, /a).
	if res.Rows[0].Date != "2020-01-01" || res.Rows[1].Date != "2020-01-02" {
		t.Fatalf("rows not in ascending date order: %v, %v", res.Rows[0].Date, res.Rows[1].Date)
	}
	// 2020-01-02 (newest): A has accumulated 3000, B 5000 (carry-forward).
	if want := []int64{5000, 3000}; !reflect.DeepEqual(res.Rows[1].Values, want) {
		t.Errorf("values at 2020-01-02 = %v, want %v", res.Rows[1].Values, want)
	}
	// 2020-01-01 (oldest): A only its 1000-byte file, B its full 5000.
	if want := []int64{5000, 1000}; !reflect.DeepEqual(res.Rows[0].Values, want) {
		t.Errorf("values at 2020-01-01 = %v, want %v", res.Rows[0].Values, want)
	}
}

func TestStackCarryForward(t *testing.T) {
	// B has no activity on 2020-01-02; it must still get its last
	// accumulated value on that row.
	buckets := map[string]scan.DateBuckets{
		"/a": {"2020-01-01": 10, "2020-01-02": 20, "2020-01-03": 30},
		"/b": {"2020-01-03": 100, "2020-01-01": 1},
	}
	totals := map[string]int64{"/a": 60, "/b": 101}

	res := Stack(buckets, totals)

	if want := []string{"/b", "/a"}; !reflect.DeepEqual(res.Roots, want) {
		t.Fatalf("Roots = %v, want %v", res.Roots, want)
	}

	byDate := make(map[string][]int64)
	for _, row := range res.Rows {
		byDate[row.Date] = row.Values
	}
	cases := map[string][]int64{
		"2020-01-03": {100, 30},
		"2020-01-02": {100, 50},
		"2020-01-01": {101, 60},
	}
	for date, want := range cases {
		if !reflect.DeepEqual(byDate[date], want) {
			t.Errorf("values at %s = %v, want %v", date, byDate[date], want)
		}
	}
}

func TestStackMonotoneAndFinalTotal(t *testing.T) {
	buckets := map[string]scan.DateBuckets{
		"/x": {"2019-05-01": 7, "2020-02-10": 11, "2021-12-31": 13},
		"/y": {"2020-02-10": 5},
	}
	totals := map[string]int64{"/x": 31, "/y": 5}

	res := Stack(buckets, totals)

	// Walking newest to oldest, each root's value never decreases.
	for j := range res.Roots {
		prev := int64(-1)
		for i := len(res.Rows) - 1; i >= 0; i-- {
			v := res.Rows[i].Values[j]
			if v < prev {
				t.Errorf("root %s not monotone at %s: %d < %d",
					res.Roots[j], res.Rows[i].Date, v, prev)
			}
			prev = v
		}
	}

	// The oldest row carries each root's full total.
	oldest := res.Rows[0]
	for j, root := range res.Roots {
		if oldest.Values[j] != totals[root] {
			t.Errorf("oldest value for %s = %d, want total %d",
				root, oldest.Values[j], totals[root])
		}
	}
}

func TestStackOrderTieBreak(t *testing.T) {
	buckets := map[string]scan.DateBuckets{
		"/c": {"2020-01-01": 5},
		"/a": {"2020-01-01": 5},
		"/b": {"2020-01-01": 9},
	}
	totals := map[string]int64{"/c": 5, "/a": 5, "/b": 9}

	res := Stack(buckets, totals)
	if want := []string{"/b", "/a", "/c"}; !reflect.DeepEqual(res.Roots, want) {
		t.Errorf("Roots = %v, want %v (ties broken by path)", res.Roots, want)
	}
}

func TestStackEmptyRootGetsZeroColumn(t *testing.T) {
	buckets := map[string]scan.DateBuckets{
		"/full":  {"2020-01-01": 100},
		"/empty": {},
	}
	totals := map[string]int64{"/full": 100, "/empty": 0}

	res := Stack(buckets, totals)
	if want := []string{"/full", "/empty"}; !reflect.DeepEqual(res.Roots, want) {
		t.Fatalf("Roots = %v, want %v", res.Roots, want)
	}
	if want := []int64{100, 0}; !reflect.DeepEqual(res.Rows[0].Values, want) {
		t.Errorf("values = %v, want %v", res.Rows[0].Values, want)
	}
}

func TestStackDegenerate(t *testing.T) {
	for name, buckets := range map[string]map[string]scan.DateBuckets{
		"no roots":  {},
		"all empty": {"/a": {}, "/b": {}},
	} {
		res := Stack(buckets, map[string]int64{})
		if !res.Placeholder {
			t.Errorf("%s: expected placeholder result", name)
		}
		if len(res.Rows) != 1 {
			t.Fatalf("%s: got %d rows, want 1", name, len(res.Rows))
		}
		if want := []int64{0}; !reflect.DeepEqual(res.Rows[0].Values, want) {
			t.Errorf("%s: values = %v, want %v", name, res.Rows[0].Values, want)
		}
	}
}
