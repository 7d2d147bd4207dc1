// Package depth names per-base depth records after the bed region that
// contains them.
//
// Both inputs must be sorted by position on a single sequence: the regions
// are walked with a forward-only cursor while depth records are streamed.
package depth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmgie/intergene-finder/internal/xopen"
)

var (
	ErrColumnMismatch = errors.New("column mismatch")
	ErrNumeric        = errors.New("non-numeric field")
	ErrUnsorted       = errors.New("positions not sorted")
)

// ParseError locates a parse failure.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Region is one bed line. Start and End are compared to depth positions
// as given, both inclusive.
type Region struct {
	Chrom      string
	Start, End int
	Name       string
}

// Stats counts the records of one depth file.
type Stats struct {
	Positions int
	Named     int
}

// ReadRegionsFile reads a four-column bed file.
func ReadRegionsFile(path string) ([]Region, error) {
	rc, err := xopen.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	regions, err := ReadRegions(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return regions, nil
}

// ReadRegions parses chrom, start, end and name columns, tab separated.
func ReadRegions(r io.Reader) ([]Region, error) {
	var regions []Region
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 4 {
			return nil, &ParseError{Line: n, Err: fmt.Errorf("%w: got %d columns, want 4", ErrColumnMismatch, len(cols))}
		}
		start, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, &ParseError{Line: n, Err: fmt.Errorf("%w: start %q", ErrNumeric, cols[1])}
		}
		end, err := strconv.Atoi(cols[2])
		if err != nil {
			return nil, &ParseError{Line: n, Err: fmt.Errorf("%w: end %q", ErrNumeric, cols[2])}
		}
		regions = append(regions, Region{Chrom: cols[0], Start: start, End: end, Name: cols[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return regions, nil
}

// Annotate copies each depth line of r to w with the name of the region
// containing its position appended as a new column (empty when no region
// contains it).
func Annotate(regions []Region, r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	idx, prev := 0, -1
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "\t", 4)
		if len(cols) < 3 {
			return st, &ParseError{Line: n, Err: fmt.Errorf("%w: got %d columns, want at least 3", ErrColumnMismatch, len(cols))}
		}
		pos, err := strconv.Atoi(cols[1])
		if err != nil {
			return st, &ParseError{Line: n, Err: fmt.Errorf("%w: position %q", ErrNumeric, cols[1])}
		}
		if _, err := strconv.Atoi(cols[2]); err != nil {
			return st, &ParseError{Line: n, Err: fmt.Errorf("%w: depth %q", ErrNumeric, cols[2])}
		}
		if pos < prev {
			return st, &ParseError{Line: n, Err: fmt.Errorf("%w: %d after %d", ErrUnsorted, pos, prev)}
		}
		prev = pos

		for idx < len(regions) && pos > regions[idx].End {
			idx++
		}
		name := ""
		if idx < len(regions) && pos >= regions[idx].Start {
			name = regions[idx].Name
			st.Named++
		}
		st.Positions++
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", line, name); err != nil {
			return st, err
		}
	}
	if err := sc.Err(); err != nil {
		return st, err
	}
	return st, bw.Flush()
}

// File annotates the depth file at in and writes the result to out
// ("-" for stdout).
func File(regions []Region, in, out string) (Stats, error) {
	rc, err := xopen.Open(in)
	if err != nil {
		return Stats{}, err
	}
	defer rc.Close()

	if out == "-" {
		st, err := Annotate(regions, rc, os.Stdout)
		if err != nil {
			return st, fmt.Errorf("%s: %w", in, err)
		}
		return st, nil
	}

	f, err := os.Create(out)
	if err != nil {
		return Stats{}, err
	}
	st, err := Annotate(regions, rc, f)
	if err != nil {
		f.Close()
		return st, fmt.Errorf("%s: %w", in, err)
	}
	return st, f.Close()
}
