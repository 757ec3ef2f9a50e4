package minmap

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter guesses which rune separates the columns of r by
// sampling its contents. Genetic maps are distributed tab-delimited more
// often than not, so tab wins when no candidate stands out.
func DetermineDelimiter(r io.Reader) rune {
	candidates := detector.New().DetectDelimiter(r, '"')
	if len(candidates) == 0 {
		return '\t'
	}

	return rune(candidates[0][0])
}
