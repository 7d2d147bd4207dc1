// Package collector writes the merged annotation and the per-type sequence
// files of one run and summarises what was written.
package collector

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmgie/intergene-finder/internal/fasta"
	"github.com/dmgie/intergene-finder/internal/gff"
	"github.com/dmgie/intergene-finder/internal/intergenic"
)

// DefaultGFFName is the merged annotation file name inside Config.Dir.
const DefaultGFFName = "reference+intergenic.gff"

type Config struct {
	Dir     string   // output directory, created if missing
	GFFName string   // defaults to DefaultGFFName
	Types   []string // record types to write as <type>.fasta

	// Warn receives recoverable problems, such as a requested type with
	// no records. Nil discards them.
	Warn func(format string, args ...interface{})
}

type TypeStats struct {
	Records        int    `json:"records"`
	Bases          int    `json:"bases"`
	AmbiguousBases int    `json:"ambiguous_bases"`
	File           string `json:"file,omitempty"`
}

// Stats is returned after all files are written.
type Stats struct {
	GFF             string               `json:"gff"`
	TotalRecords    int                  `json:"total_records"`
	Intergenic      int                  `json:"intergenic_records"`
	IntergenicBases int                  `json:"intergenic_bases"`
	PerType         map[string]TypeStats `json:"per_type"`
	Missing         []string             `json:"missing_types,omitempty"`
}

// Write writes header and feats to Dir/GFFName and one FASTA file per
// requested type. Records must already carry their sequences when Types
// is non-empty.
func Write(cfg Config, header string, feats []gff.Feature) (Stats, error) {
	if cfg.GFFName == "" {
		cfg.GFFName = DefaultGFFName
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	warn := cfg.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		GFF:          filepath.Join(cfg.Dir, cfg.GFFName),
		TotalRecords: len(feats),
		PerType:      make(map[string]TypeStats),
	}
	for _, f := range feats {
		ts := stats.PerType[f.Type]
		ts.Records++
		ts.Bases += f.Len()
		ts.AmbiguousBases += fasta.CountAmbiguous(f.Seq)
		stats.PerType[f.Type] = ts
		if f.Type == intergenic.Type {
			stats.Intergenic++
			stats.IntergenicBases += f.Len()
		}
	}

	if err := gff.WriteFile(stats.GFF, header, feats); err != nil {
		return stats, fmt.Errorf("writing %s: %w", stats.GFF, err)
	}

	done := make(map[string]bool)
	for _, typ := range cfg.Types {
		if done[typ] {
			continue
		}
		done[typ] = true

		ts, ok := stats.PerType[typ]
		if !ok {
			stats.Missing = append(stats.Missing, typ)
			warn("invalid entry type %q: no records, not creating a FASTA file for it", typ)
			continue
		}
		path := filepath.Join(cfg.Dir, typ+".fasta")
		if err := writeFasta(path, typ, feats); err != nil {
			return stats, fmt.Errorf("writing %s: %w", path, err)
		}
		ts.File = path
		stats.PerType[typ] = ts
	}
	return stats, nil
}

func writeFasta(path, typ string, feats []gff.Feature) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	for _, rec := range feats {
		if rec.Type != typ {
			continue
		}
		title := fmt.Sprintf("%s length: %d", rec.Attributes, len(rec.Seq))
		if err := fasta.WriteBlock(bw, title, rec.Seq, fasta.LineWidth); err != nil {
			f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
