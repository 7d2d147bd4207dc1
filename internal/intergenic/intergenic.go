// Package intergenic finds the spans of a reference that no annotated
// feature covers and turns them into annotation records.
package intergenic

import (
	"errors"
	"fmt"

	"github.com/dmgie/intergene-finder/internal/gff"
)

// Gap is a 1-based, end-inclusive span not covered by a qualifying feature.
type Gap struct {
	Start  int
	End    int
	Strand gff.Strand // gff.None for unstranded sweeps
}

// Len returns the number of bases in g.
func (g Gap) Len() int { return g.End - g.Start + 1 }

// DefaultSkipTypes are feature types that never open or close a gap.
var DefaultSkipTypes = []string{"region", "sequence_feature", "start_codon", "stop_codon"}

// ErrOptions is returned for a negative buffer or an unknown strand filter.
var ErrOptions = errors.New("invalid options")

type Options struct {
	// Buffer is the minimum distance between two features for the space
	// between them to count as a gap.
	Buffer int
	// Strand restricts the sweep to features on this strand plus features
	// with no strand. Empty means unstranded.
	Strand gff.Strand
	// SkipTypes replaces DefaultSkipTypes when non-nil.
	SkipTypes []string
	// ExclusiveTail starts the trailing gap after the last covered base
	// instead of on it.
	ExclusiveTail bool
}

func (o Options) validate() error {
	if o.Buffer < 0 {
		return fmt.Errorf("%w: negative buffer %d", ErrOptions, o.Buffer)
	}
	switch o.Strand {
	case "", gff.Plus, gff.Minus:
		return nil
	}
	return fmt.Errorf("%w: strand %q", ErrOptions, o.Strand)
}

func (o Options) skipSet() map[string]bool {
	types := o.SkipTypes
	if types == nil {
		types = DefaultSkipTypes
	}
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

func (o Options) keeps(s gff.Strand) bool {
	return o.Strand == "" || s.Unspecified() || s == o.Strand
}

// Find sweeps feats, which must be in ascending start order, over a
// reference of refLen bases and returns the gaps in ascending order.
//
// The first gap starts at 1 unless the first kept feature starts at 1, in
// which case position 1 counts as covered. A feature starting right after
// the covered boundary extends it by one base before the gap test. The
// trailing gap starts on the last covered base (after it with
// ExclusiveTail), never below 1.
func Find(feats []gff.Feature, refLen int, opt Options) ([]Gap, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	skip := opt.skipSet()
	tag := opt.Strand
	if tag == "" {
		tag = gff.None
	}

	var (
		gaps    []Gap
		lastEnd int
		first   = true
	)
	for _, f := range feats {
		if !opt.keeps(f.Strand) {
			continue
		}
		if first {
			if f.Start == 1 {
				lastEnd = 1
			}
			first = false
		}
		if skip[f.Type] {
			continue
		}
		if f.Start == lastEnd+1 {
			lastEnd++
		}
		if f.Start > lastEnd+opt.Buffer {
			gaps = append(gaps, Gap{Start: lastEnd + 1, End: f.Start - 1, Strand: tag})
		}
		if f.End > lastEnd {
			lastEnd = f.End
		}
	}

	if lastEnd < refLen {
		lo := lastEnd
		if opt.ExclusiveTail {
			lo++
		}
		if lo < 1 {
			lo = 1
		}
		gaps = append(gaps, Gap{Start: lo, End: refLen, Strand: tag})
	}
	return gaps, nil
}

// FindStranded runs Find once for the plus strand and once for the minus
// strand and returns the plus gaps followed by the minus gaps. Gaps on
// opposite strands may overlap; they are not merged.
func FindStranded(feats []gff.Feature, refLen int, opt Options) ([]Gap, error) {
	var gaps []Gap
	for _, s := range []gff.Strand{gff.Plus, gff.Minus} {
		o := opt
		o.Strand = s
		g, err := Find(feats, refLen, o)
		if err != nil {
			return nil, err
		}
		gaps = append(gaps, g...)
	}
	return gaps, nil
}
