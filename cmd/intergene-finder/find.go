package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmgie/intergene-finder/internal/collector"
	"github.com/dmgie/intergene-finder/internal/fasta"
	"github.com/dmgie/intergene-finder/internal/gff"
	"github.com/dmgie/intergene-finder/internal/intergenic"
	"github.com/dmgie/intergene-finder/internal/merge"
)

type findCmd struct {
	input         *string
	fasta         *string
	types         *[]string
	minDistance   *int
	stranded      *bool
	outDir        *string
	sortKey       *string
	exclusiveTail *bool
	gffName       *string
	jsonPath      *string
	strictBases   *bool

	verbose bool
	stderr  io.Writer
}

// reference is the sequence the annotation is laid on. seq is nil when
// only the length is known.
type reference struct {
	id  string
	seq []byte
	len int
}

func (c *findCmd) run() error {
	warn := warner(c.stderr)

	ann, err := gff.ReadFile(*c.input)
	if err != nil {
		return err
	}
	if c.verbose {
		log.Printf("read %d records from %s", len(ann.Features), *c.input)
	}

	ref, err := c.reference(ann, warn)
	if err != nil {
		return err
	}

	key := merge.ByStart
	if *c.stranded {
		key = merge.ByEnd
	}
	if *c.sortKey != "" {
		if key, err = merge.ParseSortKey(*c.sortKey); err != nil {
			return err
		}
	}

	opt := intergenic.Options{Buffer: *c.minDistance, ExclusiveTail: *c.exclusiveTail}
	var gaps []intergenic.Gap
	if *c.stranded {
		gaps, err = intergenic.FindStranded(ann.Features, ref.len, opt)
	} else {
		gaps, err = intergenic.Find(ann.Features, ref.len, opt)
	}
	if err != nil {
		return err
	}
	if c.verbose {
		log.Printf("found %d intergenic regions on a %d base reference", len(gaps), ref.len)
	}

	synth := intergenic.Synthesize(intergenic.SeqID(ann.Features, ref.id), gaps, 1)
	merged := merge.Merge(ann.Features, synth, key)

	types := splitTypes(*c.types)
	if ref.seq != nil {
		if err := merge.Extract(merged, ref.seq); err != nil {
			return err
		}
	} else if len(types) > 0 {
		warn("no reference sequence given, not creating FASTA files for %s", strings.Join(types, ", "))
		types = nil
	}

	stats, err := collector.Write(collector.Config{
		Dir:     *c.outDir,
		GFFName: *c.gffName,
		Types:   types,
		Warn:    warn,
	}, ann.Header, merged)
	if err != nil {
		return err
	}

	// summary to stderr, like the progress lines
	p := message.NewPrinter(language.English)
	p.Fprintf(c.stderr, "Records written: %d\nIntergenic regions: %d\nIntergenic bases: %d\n",
		stats.TotalRecords, stats.Intergenic, stats.IntergenicBases)

	if *c.jsonPath != "" {
		return c.writeJSON(key, stats)
	}
	return nil
}

// reference picks the sequence: --fasta, else an embedded ##FASTA section,
// else only a length from the annotation itself.
func (c *findCmd) reference(ann *gff.Annotation, warn func(string, ...interface{})) (reference, error) {
	var recs []fasta.Record
	source := *c.fasta
	if source != "" {
		var err error
		if recs, err = fasta.ReadFile(source); err != nil {
			return reference{}, err
		}
		if len(recs) == 0 {
			return reference{}, fmt.Errorf("%s: no sequence records", source)
		}
	} else if len(ann.Sequences) > 0 {
		recs, source = ann.Sequences, *c.input+" (##FASTA)"
	}

	if len(recs) == 0 {
		n := annotatedLength(ann.Features)
		if c.verbose {
			log.Printf("no reference sequence, using annotated length %d", n)
		}
		return reference{len: n}, nil
	}

	if len(recs) > 1 {
		warn("%s holds %d sequences, using only the first (%s)", source, len(recs), recs[0].ID)
	}
	rec := recs[0]
	if *c.strictBases {
		if err := fasta.CheckIUPAC(rec.Seq); err != nil {
			return reference{}, fmt.Errorf("%s: %w", source, err)
		}
	}
	return reference{id: rec.ID, seq: rec.Seq, len: len(rec.Seq)}, nil
}

// annotatedLength is the end of the first region record, or the largest
// end of any record.
func annotatedLength(feats []gff.Feature) int {
	n := 0
	for _, f := range feats {
		if f.Type == "region" {
			return f.End
		}
		if f.End > n {
			n = f.End
		}
	}
	return n
}

func splitTypes(flags []string) []string {
	var types []string
	for _, v := range flags {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" { // forgive spaces
				types = append(types, t)
			}
		}
	}
	return types
}

func (c *findCmd) writeJSON(key merge.SortKey, stats collector.Stats) error {
	out := struct {
		Input        string `json:"input"`
		Reference    string `json:"reference,omitempty"`
		MinDistance  int    `json:"min_distance"`
		Stranded     bool   `json:"stranded"`
		SortKey      string `json:"sort_key"`
		ExclusiveEnd bool   `json:"exclusive_tail"`
		collector.Stats
	}{
		Input:        *c.input,
		Reference:    *c.fasta,
		MinDistance:  *c.minDistance,
		Stranded:     *c.stranded,
		SortKey:      key.String(),
		ExclusiveEnd: *c.exclusiveTail,
		Stats:        stats,
	}
	f, err := os.Create(*c.jsonPath)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("encode json: %w", err)
	}
	return f.Close()
}
