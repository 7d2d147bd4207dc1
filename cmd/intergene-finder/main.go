// intergene-finder adds the intergenic regions of a single-sequence genome
// annotation as synthetic records and extracts per-type sequences.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/alecthomas/kingpin"
	"github.com/fatih/color"

	"github.com/dmgie/intergene-finder/internal/collector"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

func main() {
	log.SetFlags(0)
	log.SetPrefix("intergene-finder: ")

	if err := run(os.Args[1:], os.Stderr); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(os.Stderr, "error: %v, try --help\n", err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	app := kingpin.New("intergene-finder", "Finds intergenic regions, creates FASTA and GFF files.")
	app.Version(fmt.Sprintf("intergene-finder %s (commit %s, %s)", version, commit, date))
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "verbose progress to stderr").Short('v').Bool()

	find := &findCmd{stderr: stderr}
	fc := app.Command("find", "Extract intergenic regions from a GFF file into a new GFF file and (optionally) FASTA files.").Default()
	find.input = fc.Flag("input", "input GFF file to find the intergenic regions from ('-' for stdin)").Short('i').Required().String()
	find.fasta = fc.Flag("fasta", "genome sequence as a FASTA file to extract sequences from").Short('f').String()
	find.types = fc.Flag("types", "entry types to write as <type>.fasta, comma separated or repeated").Short('t').Strings()
	find.minDistance = fc.Flag("min_distance", "minimum distance between two genes for the space between them to be an intergenic region").Short('d').Default("3").Int()
	find.stranded = fc.Flag("stranded", "compute intergenic regions per strand").Short('s').Bool()
	find.outDir = fc.Flag("outdir", "output directory").Short('o').Default(".").String()
	find.sortKey = fc.Flag("sort", "coordinate to order merged records by (default: start, or end with --stranded)").Enum("start", "end")
	find.exclusiveTail = fc.Flag("exclusive-tail", "start the trailing region after the last annotated base instead of on it").Bool()
	find.gffName = fc.Flag("gff-name", "name of the merged GFF file inside --outdir").Default(collector.DefaultGFFName).String()
	find.jsonPath = fc.Flag("json", "optional: write run summary JSON here").String()
	find.strictBases = fc.Flag("strict-bases", "fail on reference letters outside the IUPAC alphabet").Bool()

	dep := &depthCmd{}
	dc := app.Command("depth", "Add the names of bed regions to \"samtools depth\" output. Both files must be sorted by position.")
	dep.bed = dc.Flag("bed", "bed file with chromosome, start, end and name of the regions").Short('b').Required().String()
	dep.depths = dc.Flag("depth", "depth file(s) to add names to; several files are written to <file>.depthn").Short('d').Required().Strings()
	dep.output = dc.Flag("output", "output name for a single depth file (<output>.depthn); stdout if unset").Short('o').String()
	dep.threads = dc.Flag("threads", "number of depth files processed at once").Short('j').Default(strconv.Itoa(runtime.NumCPU())).Int()

	command, err := app.Parse(args)
	if err != nil {
		return &usageError{err}
	}

	find.verbose = *verbose
	dep.verbose = *verbose
	switch command {
	case fc.FullCommand():
		return find.run()
	case dc.FullCommand():
		return dep.run()
	}
	return nil
}

// warner prints recoverable problems in red so they stand out from progress.
func warner(w io.Writer) func(format string, args ...interface{}) {
	label := color.New(color.FgRed, color.Bold).SprintFunc()
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, "%s %s\n", label("WARNING:"), fmt.Sprintf(format, args...))
	}
}
