// Package gff holds the nine-column annotation record and its text codec.
//
// Coordinates are 1-based and end-inclusive, as in the files themselves.
// Column text other than start and end is kept verbatim so that records
// which were not modified are written back byte for byte.
package gff

import "github.com/dmgie/intergene-finder/internal/fasta"

// Strand is the seventh annotation column.
type Strand string

const (
	Plus    Strand = "+"
	Minus   Strand = "-"
	None    Strand = "."
	Unknown Strand = "?"
)

// Unspecified reports whether s carries no strand information.
func (s Strand) Unspecified() bool { return s == None || s == Unknown || s == "" }

// Feature is one annotation line.
type Feature struct {
	SeqID      string
	Source     string
	Type       string
	Start      int // 1-based
	End        int // inclusive
	Score      string
	Strand     Strand
	Phase      string
	Attributes string

	// Seq is the reference slice [Start, End]; nil until extracted.
	Seq []byte
}

// Len returns the number of bases covered by f.
func (f Feature) Len() int { return f.End - f.Start + 1 }

// Annotation is a parsed annotation file.
type Annotation struct {
	Header   string // leading comment lines joined by "\n"
	Features []Feature
	// Sequences holds records from a trailing ##FASTA section, if any.
	Sequences []fasta.Record
}

type Features []Feature

func (s Features) Len() int      { return len(s) }
func (s Features) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type ByStart struct{ Features }
type ByEnd struct{ Features }

func (s ByStart) Less(i, j int) bool { return s.Features[i].Start < s.Features[j].Start }
func (s ByEnd) Less(i, j int) bool   { return s.Features[i].End < s.Features[j].End }
