package bio

import (
	"errors"
	"math/rand"
	"testing"
)

// Example sequence, the first codons code for Met-Glu-Pro-Leu.
const dnaExample = "TACCTTGGGGAATATACACGCTGGCTTCGATGAATC"

func mustAA(t testing.TB, abbr string, letter byte, name string) AminoAcid {
	aa, err := NewAminoAcid(abbr, letter, name)
	if err != nil {
		t.Fatal(err)
	}
	return aa
}

func mustCodon(t testing.TB, s string) Codon {
	c, err := ParseCodon(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func smallTable(t testing.TB) CodonTable {
	return CodonTable{
		{Codon: mustCodon(t, "AUG"), AminoAcid: mustAA(t, "Met", 'M', "Methionine")},
		{Codon: mustCodon(t, "UUU"), AminoAcid: mustAA(t, "Phe", 'F', "Phenylalanine")},
	}
}

func randomDNA(r *rand.Rand, n int) DNASequence {
	dna := make(DNASequence, n)
	for i := range dna {
		dna[i] = DNANucleotide(r.Intn(4))
	}
	return dna
}

func TestComplement(t *testing.T) {
	dna, err := ParseDNA("ATCG")
	if err != nil {
		t.Fatal(err)
	}
	c := Complement(dna)
	if c.String() != "TAGC" {
		t.Errorf("complement: wanted TAGC, got %s", c)
	}
	if dna.String() != "ATCG" {
		t.Error("input sequence was modified")
	}
	if len(Complement(DNASequence{})) != 0 {
		t.Error("complement of empty sequence is not empty")
	}
}

func TestComplementInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		dna := randomDNA(r, r.Intn(50))
		c := Complement(dna)
		if len(c) != len(dna) {
			t.Fatalf("length changed: %d -> %d", len(dna), len(c))
		}
		if cc := Complement(c); cc.String() != dna.String() {
			t.Errorf("complement is not involutive: %s -> %s", dna, cc)
		}
	}
}

func TestTranscribe(t *testing.T) {
	dna, _ := ParseDNA("TAC")
	rna := Transcribe(dna)
	if rna.String() != "AUG" {
		t.Errorf("transcription: wanted AUG, got %s", rna)
	}

	dna, _ = ParseDNA("ATCG")
	if rna := Transcribe(dna); rna.String() != "UAGC" {
		t.Errorf("transcription: wanted UAGC, got %s", rna)
	}

	if len(Transcribe(nil)) != 0 {
		t.Error("transcription of empty sequence is not empty")
	}
}

func TestTranscribeLength(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		dna := randomDNA(r, r.Intn(50))
		rna1 := Transcribe(dna)
		rna2 := Transcribe(dna)
		if len(rna1) != len(dna) {
			t.Fatalf("length changed: %d -> %d", len(dna), len(rna1))
		}
		if rna1.String() != rna2.String() {
			t.Error("transcription is not deterministic")
		}
	}
}

func TestTranslate(t *testing.T) {
	table := smallTable(t)
	rna, _ := ParseRNA("AUGUUU")
	for _, lookup := range []CodonLookup{table, table.Index()} {
		p, err := Translate(lookup, rna)
		if err != nil {
			t.Fatal(err)
		}
		if len(p) != 2 || p[0].Abbr() != "Met" || p[1].Abbr() != "Phe" {
			t.Errorf("wanted Met-Phe, got %s", p)
		}
	}
}

func TestTranslateShort(t *testing.T) {
	table := smallTable(t)
	for _, s := range []string{"", "A", "AU"} {
		rna, _ := ParseRNA(s)
		for _, lookup := range []CodonLookup{table, CodonTable{}} {
			p, err := Translate(lookup, rna)
			if !errors.Is(err, ErrInsufficientInput) {
				t.Errorf("%q: wanted insufficient input error, got %v", s, err)
			}
			if p != nil {
				t.Errorf("%q: output produced on error", s)
			}
		}
	}
}

func TestTranslateEmptyTable(t *testing.T) {
	rna, _ := ParseRNA("AUGUUUCC")
	p, err := Translate(CodonTable{}, rna)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 0 {
		t.Errorf("wanted empty peptide, got %s", p)
	}
}

func TestTranslateSkips(t *testing.T) {
	table := smallTable(t)
	// GGG is not in the table, trailing AU is incomplete.
	rna, _ := ParseRNA("AUGGGGUUUAU")
	p, err := Translate(table, rna)
	if err != nil {
		t.Fatal(err)
	}
	if p.Abbreviations() != "Met-Phe" {
		t.Errorf("wanted Met-Phe, got %s", p)
	}
	if len(p) >= len(rna)/3 {
		t.Error("unmatched codon contributed to the output")
	}
	un := Unmatched(table, rna)
	if len(un) != 1 || un[0] != 3 {
		t.Errorf("wanted unmatched codon at 3, got %v", un)
	}
}

func TestTranslateFirstMatch(t *testing.T) {
	aug := mustCodon(t, "AUG")
	table := CodonTable{
		{Codon: aug, AminoAcid: mustAA(t, "Met", 'M', "Methionine")},
		{Codon: aug, AminoAcid: mustAA(t, "Xaa", 'X', "Unknown")},
	}
	rna, _ := ParseRNA("AUGAUG")
	for _, lookup := range []CodonLookup{table, table.Index()} {
		p, err := Translate(lookup, rna)
		if err != nil {
			t.Fatal(err)
		}
		if p.Letters() != "MM" {
			t.Errorf("first match should win, got %s", p.Letters())
		}
	}
	if table.Index().Len() != 1 {
		t.Error("duplicate codon indexed twice")
	}
}

func TestTranslateLengthBound(t *testing.T) {
	table := smallTable(t)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		rna := Transcribe(randomDNA(r, 3+r.Intn(60)))
		p1, err := Translate(table, rna)
		if err != nil {
			t.Fatal(err)
		}
		p2, _ := Translate(table.Index(), rna)
		if len(p1) > len(rna)/3 {
			t.Errorf("peptide too long: %d > %d", len(p1), len(rna)/3)
		}
		if p1.Letters() != p2.Letters() {
			t.Errorf("table and index disagree: %s != %s", p1.Letters(), p2.Letters())
		}
		if len(p1)+len(Unmatched(table, rna)) != len(rna)/3 {
			t.Error("translated and unmatched codons do not add up")
		}
	}
}

func BenchmarkTranslateTable(b *testing.B) {
	table := smallTable(b)
	rna := Transcribe(randomDNA(rand.New(rand.NewSource(4)), 3000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Translate(table, rna)
	}
}

func BenchmarkTranslateIndex(b *testing.B) {
	idx := smallTable(b).Index()
	rna := Transcribe(randomDNA(rand.New(rand.NewSource(4)), 3000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Translate(idx, rna)
	}
}
