package genmap

import (
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
)

// WriteMap emits the surviving entries as a tab-delimited map for the named
// chromosome. Sex-averaged maps use the Rate column placeholder format;
// sex-specific maps emit both genetic positions.
func WriteMap(w io.Writer, seq *Sequence, chrom string) error {
	header := "# Chrom\tPosition\tRate\tMap(cM)"
	if seq.sexSpec {
		header = "#chr\tpos\tmale_cM\tfemale_cM"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return pfx.Err(err)
	}

	for e := seq.head; e != nil; e = e.right {
		var err error
		if seq.sexSpec {
			_, err = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", chrom, e.PhysPos,
				formatGenet(e.GenetPos), formatGenet(e.GenetPos2))
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\tNA\t%s\n", chrom, e.PhysPos,
				formatGenet(e.GenetPos))
		}
		if err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

// formatGenet renders a genetic position with the fewest digits that survive
// a round trip, so output values match the input file rather than a fixed
// precision.
func formatGenet(g float64) string {
	return strconv.FormatFloat(g, 'g', -1, 64)
}
