package gff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmgie/intergene-finder/internal/fasta"
	"github.com/dmgie/intergene-finder/internal/xopen"
)

const (
	numColumns     = 9
	commentPrefix  = "#"
	fastaDirective = "##FASTA"
)

var (
	// ErrColumnMismatch is returned for a record line without exactly nine
	// tab-separated columns.
	ErrColumnMismatch = errors.New("column mismatch")
	// ErrNumeric is returned when start or end is not an integer.
	ErrNumeric = errors.New("non-numeric coordinate")
)

// ParseError locates a parse failure.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile parses the annotation at path ("-" for stdin, gzip allowed).
func ReadFile(path string) (*Annotation, error) {
	rc, err := xopen.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	a, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a, nil
}

// Parse reads an annotation. Leading comment lines form the header; later
// comment lines and blank lines are skipped. Any malformed record aborts
// parsing and no annotation is returned.
func Parse(r io.Reader) (*Annotation, error) {
	br := bufio.NewReader(r)
	a := &Annotation{}
	var header []string
	inHeader := true

	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == fastaDirective:
			seqs, ferr := fasta.Read(br)
			if ferr != nil {
				return nil, &ParseError{Line: n, Err: ferr}
			}
			a.Sequences = seqs
			err = io.EOF
		case strings.HasPrefix(line, commentPrefix):
			if inHeader {
				header = append(header, line)
			}
		case line == "":
		default:
			inHeader = false
			f, perr := parseLine(line)
			if perr != nil {
				return nil, &ParseError{Line: n, Err: perr}
			}
			a.Features = append(a.Features, f)
		}

		if err == io.EOF {
			break
		}
	}
	a.Header = strings.Join(header, "\n")
	return a, nil
}

func parseLine(line string) (Feature, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != numColumns {
		return Feature{}, fmt.Errorf("%w: got %d columns, want %d", ErrColumnMismatch, len(cols), numColumns)
	}
	start, err := strconv.Atoi(cols[3])
	if err != nil {
		return Feature{}, fmt.Errorf("%w: start %q", ErrNumeric, cols[3])
	}
	end, err := strconv.Atoi(cols[4])
	if err != nil {
		return Feature{}, fmt.Errorf("%w: end %q", ErrNumeric, cols[4])
	}
	return Feature{
		SeqID:      cols[0],
		Source:     cols[1],
		Type:       cols[2],
		Start:      start,
		End:        end,
		Score:      cols[5],
		Strand:     Strand(cols[6]),
		Phase:      cols[7],
		Attributes: cols[8],
	}, nil
}
