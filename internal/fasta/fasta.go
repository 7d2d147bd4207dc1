// Package fasta reads reference sequences and writes FASTA blocks.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dmgie/intergene-finder/internal/xopen"
)

const bufSize = 4 << 20 // 4 MiB

// LineWidth is the number of bases per sequence line in written blocks.
const LineWidth = 80

// Record is one FASTA entry (whole chromosome or contig).
type Record struct {
	Header string // header line without the leading '>'
	ID     string // first whitespace-delimited token of Header
	Seq    []byte // no newlines, case preserved
}

// Read parses every record from r. Text before the first header is ignored.
func Read(r io.Reader) ([]Record, error) {
	var recs []Record
	err := scan(r, func(rec Record) {
		recs = append(recs, rec)
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadFile reads all records from path ("-" for stdin, gzip allowed).
func ReadFile(path string) ([]Record, error) {
	rc, err := xopen.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return recs, nil
}

// Stream reads `path` and sends each record down the chan.
// The channel is closed when Stream returns, on success or on error.
func Stream(path string, out chan<- Record) error {
	defer close(out)
	rc, err := xopen.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return scan(rc, func(rec Record) { out <- rec })
}

func scan(r io.Reader, emit func(Record)) error {
	br := bufio.NewReaderSize(r, bufSize)
	var (
		header string
		seq    []byte
		open   bool
	)
	flush := func() {
		if open {
			emit(Record{Header: header, ID: firstField(header), Seq: seq})
		}
	}
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 && line[0] == '>' { // header
			flush()
			header = string(line[1:])
			seq = []byte{}
			open = true
		} else if open {
			seq = append(seq, bytes.TrimSpace(line)...)
		}
		if err == io.EOF {
			flush()
			return nil
		}
	}
}

func firstField(header string) string {
	f := bytes.Fields([]byte(header))
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}

// WriteBlock writes one record: ">" + title, then seq wrapped at width
// bases per line (LineWidth if width <= 0). An empty seq still produces
// one (empty) sequence line.
func WriteBlock(w io.Writer, title string, seq []byte, width int) error {
	if width <= 0 {
		width = LineWidth
	}
	if _, err := fmt.Fprintf(w, ">%s\n", title); err != nil {
		return err
	}
	for len(seq) > width {
		if err := writeLine(w, seq[:width]); err != nil {
			return err
		}
		seq = seq[width:]
	}
	return writeLine(w, seq)
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
