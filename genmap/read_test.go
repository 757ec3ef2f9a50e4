package genmap

import (
	"strings"
	"testing"
)

func TestReadSequenceDefaultLayout(t *testing.T) {
	input := `chr pos rate cM
20 61795 0.5 0.0
# a comment in the body
20 82590 0.5 0.0104
20 88169 0.5 0.0131
`

	seq, err := ReadSequence(strings.NewReader(input), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}

	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", seq.Len())
	}
	if seq.SexSpecific() {
		t.Error("sequence unexpectedly sex-specific")
	}

	first := seq.First()
	if first.PhysPos != 61795 || first.GenetPos != 0.0 {
		t.Errorf("first entry = (%d, %v), expected (61795, 0)", first.PhysPos, first.GenetPos)
	}
	second := first.Next()
	if second.PhysPos != 82590 || second.GenetPos != 0.0104 {
		t.Errorf("second entry = (%d, %v), expected (82590, 0.0104)", second.PhysPos, second.GenetPos)
	}
}

func TestReadSequenceKeepHeader(t *testing.T) {
	input := "20 100 0.5 0.0\n20 200 0.5 0.1\n"

	seq, err := ReadSequence(strings.NewReader(input), Layout{
		PhysCol: 1, GenetCol: 3, Genet2Col: -1, KeepHeader: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if seq.Len() != 2 {
		t.Errorf("Len() = %d, expected 2: the first line is a map entry here", seq.Len())
	}
}

func TestReadSequenceSexSpecific(t *testing.T) {
	input := `#chr pos male_cM female_cM
20 100 0.0 0.0
20 200 0.1 0.15
`

	seq, err := ReadSequence(strings.NewReader(input), Layout{
		PhysCol: 1, GenetCol: 2, Genet2Col: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !seq.SexSpecific() {
		t.Fatal("sequence should be sex-specific")
	}

	second := seq.First().Next()
	if second.GenetPos != 0.1 || second.GenetPos2 != 0.15 {
		t.Errorf("second entry genetic positions = (%v, %v), expected (0.1, 0.15)", second.GenetPos, second.GenetPos2)
	}
}

func TestReadSequenceTabDelimited(t *testing.T) {
	input := "chr\tpos\trate\tcM\n20\t100\t0.5\t0.0\n20\t200\t0.5\t0.1\n"

	layout := DefaultLayout
	layout.Delimiter = '\t'

	seq, err := ReadSequence(strings.NewReader(input), layout)
	if err != nil {
		t.Fatal(err)
	}
	if seq.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", seq.Len())
	}
}

func TestReadSequenceErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "chr pos rate cM\n"},
		{"bad physical position", "header\n20 abc 0.5 0.0\n"},
		{"bad genetic position", "header\n20 100 0.5 xyz\n"},
		{"too few columns", "header\n20 100\n"},
	}

	for _, tc := range cases {
		if _, err := ReadSequence(strings.NewReader(tc.input), DefaultLayout); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
