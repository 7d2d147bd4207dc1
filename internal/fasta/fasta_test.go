package fasta

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmgie/intergene-finder/internal/xopen"
)

func TestStream(t *testing.T) {
	data := ">chr1\nacgT\nNN\n>chr2 some desc\nGgCc\n"

	tmp, err := os.CreateTemp("", "fasta*.fa")
	if err != nil { t.Fatal(err) }
	defer os.Remove(tmp.Name())
	if _, err = tmp.WriteString(data); err != nil { t.Fatal(err) }
	tmp.Close()

	ch := make(chan Record)
	go func() {
		if err := Stream(tmp.Name(), ch); err != nil {
			t.Error(err)
		}
	}()

	var recs []Record
	for r := range ch { recs = append(recs, r) }
	if len(recs) != 2 { t.Fatalf("want 2 records, got %d", len(recs)) }
	if recs[0].ID != "chr1" || string(recs[0].Seq) != "acgTNN" { t.Fatalf("bad chr1: %+v", recs[0]) }
	if recs[1].ID != "chr2" || recs[1].Header != "chr2 some desc" || string(recs[1].Seq) != "GgCc" {
		t.Fatalf("bad chr2: %+v", recs[1])
	}
}

func TestStreamMissingClosesChannel(t *testing.T) {
	ch := make(chan Record)
	errc := make(chan error, 1)
	go func() { errc <- Stream(filepath.Join(t.TempDir(), "none.fa"), ch) }()
	for range ch {}
	if err := <-errc; !errors.Is(err, xopen.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReadFileGzip(t *testing.T) {
	data := ">chr1\nacgT\nNN\n>chr2 some desc\nGgCc\n"
	tmp, err := os.CreateTemp("", "fasta*.fa.gz")
	if err != nil { t.Fatal(err) }
	defer os.Remove(tmp.Name())

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(data)); err != nil { t.Fatal(err) }
	if err := zw.Close(); err != nil { t.Fatal(err) }
	if _, err := tmp.Write(buf.Bytes()); err != nil { t.Fatal(err) }
	tmp.Close()

	recs, err := ReadFile(tmp.Name())
	if err != nil { t.Fatal(err) }
	if len(recs) != 2 { t.Fatalf("want 2 records, got %d", len(recs)) }
	if string(recs[0].Seq) != "acgTNN" || string(recs[1].Seq) != "GgCc" {
		t.Fatalf("bad records: %+v", recs)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.fa"))
	if !errors.Is(err, xopen.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRead_EmptyRecordAndPreamble(t *testing.T) {
	recs, err := Read(strings.NewReader("junk before\n>empty\n>x\nAC\n\nGT"))
	if err != nil { t.Fatal(err) }
	if len(recs) != 2 { t.Fatalf("want 2 records, got %d", len(recs)) }
	if recs[0].ID != "empty" || recs[0].Seq == nil || len(recs[0].Seq) != 0 {
		t.Fatalf("bad empty record: %+v", recs[0])
	}
	if string(recs[1].Seq) != "ACGT" { t.Fatalf("bad x: %q", recs[1].Seq) }
}

func TestWriteBlock_Wraps(t *testing.T) {
	seq := bytes.Repeat([]byte("A"), 170)
	var buf bytes.Buffer
	if err := WriteBlock(&buf, "ID=IGR-1 length: 170", seq, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 { t.Fatalf("want header + 3 lines, got %d", len(lines)) }
	if lines[0] != ">ID=IGR-1 length: 170" { t.Fatalf("bad header %q", lines[0]) }
	if len(lines[1]) != 80 || len(lines[2]) != 80 || len(lines[3]) != 10 {
		t.Fatalf("bad wrapping: %d/%d/%d", len(lines[1]), len(lines[2]), len(lines[3]))
	}
}

func TestWriteBlock_ExactMultipleAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBlock(&buf, "a", bytes.Repeat([]byte("C"), 160), 80); err != nil { t.Fatal(err) }
	if strings.Count(buf.String(), "\n") != 3 { t.Fatalf("no trailing empty line expected:\n%s", buf.String()) }

	buf.Reset()
	if err := WriteBlock(&buf, "b", nil, 80); err != nil { t.Fatal(err) }
	if buf.String() != ">b\n\n" { t.Fatalf("empty seq: got %q", buf.String()) }
}
