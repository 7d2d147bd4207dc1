package fasta

import "fmt"

// 4-bit mask per base
var codeMap = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'U': 1 << 3,
	'R': (1 << 0) | (1 << 2),
	'Y': (1 << 1) | (1 << 3),
	'S': (1 << 1) | (1 << 2),
	'W': (1 << 0) | (1 << 3),
	'K': (1 << 2) | (1 << 3),
	'M': (1 << 0) | (1 << 1),
	'B': (1 << 1) | (1 << 2) | (1 << 3),
	'D': (1 << 0) | (1 << 2) | (1 << 3),
	'H': (1 << 0) | (1 << 1) | (1 << 3),
	'V': (1 << 0) | (1 << 1) | (1 << 2),
	'N': (1 << 0) | (1 << 1) | (1 << 2) | (1 << 3),
}

// BaseError reports a letter outside the IUPAC nucleotide alphabet.
type BaseError struct {
	Pos  int // 1-based
	Base byte
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("invalid IUPAC base %q at position %d", e.Base, e.Pos)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// CheckIUPAC returns a *BaseError for the first non-IUPAC letter in seq.
func CheckIUPAC(seq []byte) error {
	for i, c := range seq {
		if _, ok := codeMap[upper(c)]; !ok {
			return &BaseError{Pos: i + 1, Base: c}
		}
	}
	return nil
}

// CountAmbiguous counts bases that match more than one nucleotide (N, R, Y...).
func CountAmbiguous(seq []byte) int {
	n := 0
	for _, c := range seq {
		m := codeMap[upper(c)]
		if m&(m-1) != 0 {
			n++
		}
	}
	return n
}
