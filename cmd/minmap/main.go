// minmap greedily drops genetic map positions that can be reconstructed from
// their neighbors by linear interpolation within a chosen error tolerance,
// leaving a minimal map that still supports interpolation to that accuracy.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/minmap"
	_ "github.com/carbocation/minmap/compileinfoprint"
	"github.com/carbocation/minmap/genmap"
)

type options struct {
	tolerance   float64
	chrom       string
	mapFile     string
	outPrefix   string
	physCol     int
	genetCol    int
	genet2Col   int
	noHeader    bool
	sexSpecific bool
	delim       string
	verbose     bool
}

func main() {
	var opts options

	flag.Float64Var(&opts.tolerance, "error", 0.01, "maximum allowable error when interpolating any dropped map position (map units)")
	flag.StringVar(&opts.chrom, "chr", "", "chromosome to analyze")
	flag.StringVar(&opts.mapFile, "mapfile", "", "map filename (may be gzip, zip, xz, or bzip2 compressed)")
	flag.StringVar(&opts.outPrefix, "out", "min_viable_map", "output prefix; the map is written to <prefix><chr>.txt")
	flag.IntVar(&opts.physCol, "physcol", 1, "0-based column number of physical positions")
	flag.IntVar(&opts.genetCol, "genetcol", 3, "0-based column number of genetic positions")
	flag.BoolVar(&opts.noHeader, "noheader", false, "input map has no header line, so keep the first line")
	flag.BoolVar(&opts.sexSpecific, "sexspecific", false, "input map is sex-specific")
	flag.IntVar(&opts.genet2Col, "genet2col", -1, "used with -sexspecific: 0-based column number of the second sex's genetic position")
	flag.StringVar(&opts.delim, "delim", "", "map file delimiter; empty splits on whitespace, 'auto' detects")
	flag.BoolVar(&opts.verbose, "verbose", false, "log summary statistics for the reconstruction errors of the dropped positions")
	flag.Parse()

	if opts.chrom == "" || opts.mapFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := validateOptions(opts); err != nil {
		log.Fatalln(err)
	}

	if err := run(opts); err != nil {
		log.Fatalln(err)
	}
}

func validateOptions(opts options) error {
	if !opts.sexSpecific {
		return nil
	}

	if opts.genet2Col < 0 {
		return fmt.Errorf("when using -sexspecific, must set -genetcol and -genet2col to the 0-based columns of the male/female positions")
	}

	if opts.genetCol == opts.genet2Col {
		return fmt.Errorf("need to set -genetcol and/or -genet2col to different 0-based columns of the male/female positions")
	}

	if opts.genetCol > opts.genet2Col {
		return fmt.Errorf("set -genetcol to an index below -genet2col (this keeps the output column order aligned with the input)")
	}

	return nil
}

func run(opts options) error {
	rc, err := minmap.OpenMapFile(opts.mapFile)
	if err != nil {
		return err
	}
	defer rc.Close()

	layout := genmap.Layout{
		PhysCol:    opts.physCol,
		GenetCol:   opts.genetCol,
		Genet2Col:  -1,
		KeepHeader: opts.noHeader,
	}
	if opts.sexSpecific {
		layout.Genet2Col = opts.genet2Col
	}

	var mapReader io.Reader = rc
	switch opts.delim {
	case "":
		// Whitespace-delimited; the reader's default.
	case "auto":
		raw, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		layout.Delimiter = minmap.DetermineDelimiter(bytes.NewReader(raw))
		mapReader = bytes.NewReader(raw)
	default:
		layout.Delimiter = []rune(opts.delim)[0]
	}

	seq, err := genmap.ReadSequence(mapReader, layout)
	if err != nil {
		return err
	}

	log.Printf("Pre-filter:  chrom %s: %d entries", opts.chrom, seq.Len())

	seq.Reduce(opts.tolerance)

	log.Printf("Post-filter: chrom %s: %d entries", opts.chrom, seq.Len())

	if opts.verbose {
		summarizeResiduals(seq.ResidualErrors())
	}

	outFile := fmt.Sprintf("%s%s.txt", opts.outPrefix, opts.chrom)
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}

	if err := genmap.WriteMap(out, seq, opts.chrom); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
