package gff

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteFile writes header and features to path, creating or truncating it.
func WriteFile(path, header string, feats []Feature) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, header, feats); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write emits the header block (if any) and one nine-column line per feature.
func Write(w io.Writer, header string, feats []Feature) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		if _, err := bw.WriteString(header + "\n"); err != nil {
			return err
		}
	}
	for _, f := range feats {
		if _, err := fmt.Fprintf(
			bw,
			"%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			f.SeqID, f.Source, f.Type, f.Start, f.End, f.Score, f.Strand, f.Phase, f.Attributes,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
