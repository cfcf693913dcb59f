package scan

import (
	"reflect"
	"testing"
)

func TestAggregatorAdd(t *testing.T) {
	agg := NewAggregator()
	agg.Add("/a", "2020-01-01", 100)
	agg.Add("/a", "2020-01-01", 50)
	agg.Add("/a", "2020-01-02", 25)
	agg.Add("/b", "2020-01-01", 7)

	if got := agg.Buckets()["/a"]["2020-01-01"]; got != 150 {
		t.Errorf("bucket /a 2020-01-01 = %d, want 150", got)
	}
	if got := agg.Buckets()["/a"]["2020-01-02"]; got != 25 {
		t.Errorf("bucket /a 2020-01-02 = %d, want 25", got)
	}
	if got := agg.Totals()["/a"]; got != 175 {
		t.Errorf("total /a = %d, want 175", got)
	}
	if got := agg.Totals()["/b"]; got != 7 {
		t.Errorf("total /b = %d, want 7", got)
	}
}

func TestAggregatorTouch(t *testing.T) {
	agg := NewAggregator()
	agg.Touch("/empty")

	buckets, ok := agg.Buckets()["/empty"]
	if !ok {
		t.Fatal("touched root missing from buckets")
	}
	if len(buckets) != 0 {
		t.Errorf("touched root has %d buckets, want 0", len(buckets))
	}
	if got := agg.Totals()["/empty"]; got != 0 {
		t.Errorf("total = %d, want 0", got)
	}

	// Touch after Add must not reset accumulated state
	agg.Add("/empty", "2020-01-01", 42)
	agg.Touch("/empty")
	if got := agg.Totals()["/empty"]; got != 42 {
		t.Errorf("total after re-touch = %d, want 42", got)
	}
}

func TestAggregatorRoots(t *testing.T) {
	agg := NewAggregator()
	agg.Touch("/z")
	agg.Touch("/a")
	agg.Touch("/m")

	want := []string{"/a", "/m", "/z"}
	if got := agg.Roots(); !reflect.DeepEqual(got, want) {
		t.Errorf("Roots() = %v, want %v", got, want)
	}
}
