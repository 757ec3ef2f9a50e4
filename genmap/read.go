package genmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Layout maps genetic map columns to their 0-based positions in the input
// file.
type Layout struct {
	PhysCol  int
	GenetCol int

	// Genet2Col is the column of the second sex's genetic position. Set it
	// to -1 for sex-averaged maps.
	Genet2Col int

	// KeepHeader treats the first line as a map entry rather than a header.
	KeepHeader bool

	// Delimiter splits fields when nonzero; the zero value splits on any
	// run of whitespace.
	Delimiter rune
}

// DefaultLayout matches the common 4-column map format: chromosome, physical
// position, rate, centiMorgan position.
var DefaultLayout = Layout{PhysCol: 1, GenetCol: 3, Genet2Col: -1}

func (l Layout) maxCol() int {
	max := l.PhysCol
	if l.GenetCol > max {
		max = l.GenetCol
	}
	if l.Genet2Col > max {
		max = l.Genet2Col
	}

	return max
}

// ReadSequence consumes a genetic map whose rows are sorted by increasing
// physical position and links them into a Sequence. The first line is
// discarded as a header unless the layout says otherwise, and #-prefixed
// comment lines are skipped. Sortedness is not validated.
func ReadSequence(r io.Reader, layout Layout) (*Sequence, error) {
	seq := NewSequence(layout.Genet2Col >= 0)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if line == 1 && !layout.KeepHeader {
			continue
		}

		if strings.HasPrefix(text, "#") {
			continue
		}

		var fields []string
		if layout.Delimiter == 0 {
			fields = strings.Fields(text)
		} else {
			fields = strings.Split(text, string(layout.Delimiter))
		}
		if len(fields) == 0 {
			continue
		}

		if len(fields) <= layout.maxCol() {
			return nil, fmt.Errorf("genmap: line %d: found %d fields, need at least %d", line, len(fields), layout.maxCol()+1)
		}

		physPos, err := strconv.Atoi(fields[layout.PhysCol])
		if err != nil {
			return nil, fmt.Errorf("genmap: line %d: physical position: %w", line, err)
		}

		genetPos, err := strconv.ParseFloat(fields[layout.GenetCol], 64)
		if err != nil {
			return nil, fmt.Errorf("genmap: line %d: genetic position: %w", line, err)
		}

		entry := &Entry{PhysPos: physPos, GenetPos: genetPos}

		if seq.sexSpec {
			genetPos2, err := strconv.ParseFloat(fields[layout.Genet2Col], 64)
			if err != nil {
				return nil, fmt.Errorf("genmap: line %d: second genetic position: %w", line, err)
			}
			entry.GenetPos2 = genetPos2
		}

		seq.Append(entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if seq.Len() == 0 {
		return nil, fmt.Errorf("genmap: no map entries found")
	}

	return seq, nil
}
