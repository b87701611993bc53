package bio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseDNA(t *testing.T) {
	dna, err := ParseDNA(dnaExample)
	if err != nil {
		t.Fatal(err)
	}
	if dna.String() != dnaExample {
		t.Errorf("round trip failed: %s", dna)
	}

	for _, s := range []string{"ATXG", "ATCU", "atcg", "AT CG"} {
		if _, err := ParseDNA(s); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("%q: wanted unknown symbol error, got %v", s, err)
		}
	}
}

func TestParsePosition(t *testing.T) {
	_, err := ParseDNA("ÅTX")
	if err == nil || !strings.Contains(err.Error(), "position 0") {
		t.Errorf("wrong error %v", err)
	}
	_, err = ParseDNA("ATÅC")
	if err == nil || !strings.Contains(err.Error(), "position 2") {
		t.Errorf("wrong error %v", err)
	}
	_, err = ParseRNA("ΑUGX")
	if err == nil || !strings.Contains(err.Error(), "position 0") {
		t.Errorf("wrong error %v", err)
	}
	_, err = ParseDNA("ATCGX")
	if err == nil || !strings.Contains(err.Error(), "position 4") {
		t.Errorf("wrong error %v", err)
	}
}

func TestParseRNA(t *testing.T) {
	if _, err := ParseRNA("AUCG"); err != nil {
		t.Error(err)
	}
	if _, err := ParseRNA("AUCT"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("T accepted in RNA: %v", err)
	}
}

func TestParseCodon(t *testing.T) {
	c, err := ParseCodon("AUG")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Codon{RnaA, RnaU, RnaG}) || c.String() != "AUG" {
		t.Errorf("wrong codon %s", c)
	}
	for _, s := range []string{"AU", "AUGG", "ATG", ""} {
		if _, err := ParseCodon(s); err == nil {
			t.Errorf("%q accepted as codon", s)
		}
	}
}

func TestNewAminoAcid(t *testing.T) {
	aa, err := NewAminoAcid("Met", 'M', "Methionine")
	if err != nil {
		t.Fatal(err)
	}
	if aa.Abbr() != "Met" || aa.Letter != 'M' || aa.Name != "Methionine" {
		t.Errorf("wrong amino acid %+v", aa)
	}
	for _, s := range []string{"Me", "Meth", ""} {
		if _, err := NewAminoAcid(s, 'M', ""); err == nil {
			t.Errorf("%q accepted as abbreviation", s)
		}
	}

	short := AminoAcid{Abbreviation: [3]byte{'S', 't'}}
	if short.Abbr() != "St" {
		t.Errorf("padding not trimmed: %q", short.Abbr())
	}
}

func TestParseFasta(t *testing.T) {
	in := ">seq1 first\nTACCTT\nggg\n\n>seq2\nTA C\n"
	seqs, err := ParseFasta(bytes.NewBufferString(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 {
		t.Fatalf("wanted 2 sequences, got %d", len(seqs))
	}
	if seqs[0].Name != "seq1 first" || seqs[0].Sequence != "TACCTTGGG" {
		t.Errorf("wrong first record %+v", seqs[0])
	}
	if seqs[1].Sequence != "TAC" {
		t.Errorf("wrong second record %+v", seqs[1])
	}
	if seqs.String() != ">seq1 first\nTACCTTGGG\n>seq2\nTAC" {
		t.Errorf("wrong FASTA output %q", seqs.String())
	}

	if _, err := ParseFasta(bytes.NewBufferString("ACGT\n")); err == nil {
		t.Error("sequence without header accepted")
	}
}

func TestFormat(t *testing.T) {
	dna, _ := ParseDNA("TACCTTGG")
	if s := dna.Triplets(); s != "TAC/CTT/GG" {
		t.Errorf("wrong triplets %s", s)
	}
	if s := Transcribe(dna).Triplets(); s != "AUG/GAA/CC" {
		t.Errorf("wrong triplets %s", s)
	}
	if s := (DNASequence{}).Triplets(); s != "" {
		t.Errorf("wrong triplets for empty sequence %q", s)
	}

	p := Peptide{mustAA(t, "Met", 'M', ""), mustAA(t, "Glu", 'E', "")}
	if p.Abbreviations() != "Met-Glu" || p.Letters() != "ME" {
		t.Errorf("wrong peptide format %s %s", p.Abbreviations(), p.Letters())
	}

	if s := Wrap("ABCDE", 2); s != "AB\nCD\nE\n" {
		t.Errorf("wrong wrap %q", s)
	}
}
