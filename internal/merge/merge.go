// Package merge combines original and synthesized records and attaches
// reference sequence to them.
package merge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dmgie/intergene-finder/internal/gff"
)

// SortKey selects the coordinate merged records are ordered by.
type SortKey int

const (
	ByStart SortKey = iota
	ByEnd
)

// ParseSortKey maps "start" and "end" to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "start":
		return ByStart, nil
	case "end":
		return ByEnd, nil
	}
	return 0, fmt.Errorf("unknown sort key %q", s)
}

func (k SortKey) String() string {
	if k == ByEnd {
		return "end"
	}
	return "start"
}

// ErrOutOfRange is returned when a record lies outside the reference.
var ErrOutOfRange = errors.New("coordinates out of range")

// RangeError carries the offending coordinates.
type RangeError struct {
	Start, End int
	Len        int // reference length
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: [%d, %d] on a reference of %d bases", ErrOutOfRange, e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Merge returns a new slice holding original then synthetic, stably sorted
// by key. Records with equal keys keep that relative order.
func Merge(original, synthetic []gff.Feature, key SortKey) []gff.Feature {
	out := make(gff.Features, 0, len(original)+len(synthetic))
	out = append(out, original...)
	out = append(out, synthetic...)
	if key == ByEnd {
		sort.Stable(gff.ByEnd{Features: out})
	} else {
		sort.Stable(gff.ByStart{Features: out})
	}
	return out
}

// Extract sets Seq on every record to its [Start, End] slice of ref.
// Running it again with the same inputs yields the same sequences.
func Extract(feats []gff.Feature, ref []byte) error {
	for i := range feats {
		f := &feats[i]
		if f.Start < 1 || f.End > len(ref) || f.Start > f.End {
			return fmt.Errorf("%s %s: %w", f.Type, f.Attributes, &RangeError{Start: f.Start, End: f.End, Len: len(ref)})
		}
		f.Seq = append([]byte(nil), ref[f.Start-1:f.End]...)
	}
	return nil
}

// Types lists the record types in order of first appearance.
func Types(feats []gff.Feature) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range feats {
		if !seen[f.Type] {
			seen[f.Type] = true
			out = append(out, f.Type)
		}
	}
	return out
}
