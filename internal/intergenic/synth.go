package intergenic

import (
	"fmt"

	"github.com/dmgie/intergene-finder/internal/gff"
)

const (
	// Source is the second column of every synthesized record.
	Source = "intergene-finder"
	// Type is the third column of every synthesized record.
	Type = "intergenic"
)

// Synthesize builds one record per gap, in order. Gaps are numbered per
// strand starting at first, so a stranded run yields IGR_1(+) and IGR_1(-).
func Synthesize(seqID string, gaps []Gap, first int) []gff.Feature {
	next := make(map[gff.Strand]int)
	out := make([]gff.Feature, 0, len(gaps))
	for _, g := range gaps {
		strand := g.Strand
		if strand == "" {
			strand = gff.None
		}
		n, ok := next[strand]
		if !ok {
			n = first
		}
		next[strand] = n + 1

		out = append(out, gff.Feature{
			SeqID:      seqID,
			Source:     Source,
			Type:       Type,
			Start:      g.Start,
			End:        g.End,
			Score:      ".",
			Strand:     strand,
			Phase:      ".",
			Attributes: attributes(n, strand),
		})
	}
	return out
}

func attributes(n int, s gff.Strand) string {
	if s.Unspecified() {
		return fmt.Sprintf("ID=IGR-%d;Name=INTERGENIC_%d;locus_tag=INTERGENIC_%d", n, n, n)
	}
	id := fmt.Sprintf("%d(%s)", n, s)
	return fmt.Sprintf("ID=IGR_%s;Name=INTERGENIC_%s;locus_tag=INTERGENIC_%s", id, id, id)
}

// SeqID picks the sequence name for synthesized records: the first
// annotation record's, or fallback when there are none.
func SeqID(feats []gff.Feature, fallback string) string {
	if len(feats) > 0 {
		return feats[0].SeqID
	}
	return fallback
}
