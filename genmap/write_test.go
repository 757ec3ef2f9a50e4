package genmap

import (
	"bytes"
	"testing"
)

func TestWriteMapSexAveraged(t *testing.T) {
	seq := NewSequence(false)
	seq.Append(&Entry{PhysPos: 61795, GenetPos: 0.0})
	seq.Append(&Entry{PhysPos: 82590, GenetPos: 0.0104})

	var buf bytes.Buffer
	if err := WriteMap(&buf, seq, "20"); err != nil {
		t.Fatal(err)
	}

	want := "# Chrom\tPosition\tRate\tMap(cM)\n" +
		"20\t61795\tNA\t0\n" +
		"20\t82590\tNA\t0.0104\n"
	if buf.String() != want {
		t.Errorf("output = %q, expected %q", buf.String(), want)
	}
}

func TestWriteMapSexSpecific(t *testing.T) {
	seq := NewSequence(true)
	seq.Append(&Entry{PhysPos: 100, GenetPos: 0.1, GenetPos2: 0.15})

	var buf bytes.Buffer
	if err := WriteMap(&buf, seq, "X"); err != nil {
		t.Fatal(err)
	}

	want := "#chr\tpos\tmale_cM\tfemale_cM\n" +
		"X\t100\t0.1\t0.15\n"
	if buf.String() != want {
		t.Errorf("output = %q, expected %q", buf.String(), want)
	}
}
