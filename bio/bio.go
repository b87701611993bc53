// Package bio provides nucleotide and amino acid types together with
// transcription, translation and complementation of sequences.
package bio

// DNANucleotide is a DNA base.
type DNANucleotide uint8

// RNANucleotide is an RNA base.
type RNANucleotide uint8

// DNA bases.
const (
	DnaA DNANucleotide = iota
	DnaT
	DnaC
	DnaG
)

// RNA bases.
const (
	RnaA RNANucleotide = iota
	RnaU
	RnaC
	RnaG
)

var (
	dnaLetters = [...]byte{DnaA: 'A', DnaT: 'T', DnaC: 'C', DnaG: 'G'}
	rnaLetters = [...]byte{RnaA: 'A', RnaU: 'U', RnaC: 'C', RnaG: 'G'}

	dnaComplement = [...]DNANucleotide{DnaA: DnaT, DnaT: DnaA, DnaC: DnaG, DnaG: DnaC}
	dnaToRNA      = [...]RNANucleotide{DnaA: RnaU, DnaT: RnaA, DnaC: RnaG, DnaG: RnaC}
)

// Byte returns the one-letter code of the base.
func (n DNANucleotide) Byte() byte {
	return dnaLetters[n]
}

func (n DNANucleotide) String() string {
	return string(n.Byte())
}

// Byte returns the one-letter code of the base.
func (n RNANucleotide) Byte() byte {
	return rnaLetters[n]
}

func (n RNANucleotide) String() string {
	return string(n.Byte())
}

// DNASequence is a DNA strand in 5'->3' order.
type DNASequence []DNANucleotide

// RNASequence is an RNA strand in 5'->3' order.
type RNASequence []RNANucleotide

// Codon is a triplet of RNA bases.
type Codon [3]RNANucleotide

func (c Codon) String() string {
	return string([]byte{c[0].Byte(), c[1].Byte(), c[2].Byte()})
}

// AminoAcid describes a single amino acid. Abbreviation is padded
// with zero bytes when the code is shorter than three letters.
type AminoAcid struct {
	Abbreviation [3]byte
	Letter       byte
	Name         string
}

// Abbr returns the abbreviation without padding.
func (aa AminoAcid) Abbr() string {
	n := 0
	for n < len(aa.Abbreviation) && aa.Abbreviation[n] != 0 {
		n++
	}
	return string(aa.Abbreviation[:n])
}

func (aa AminoAcid) String() string {
	return aa.Abbr()
}

// TRNA pairs a codon with the amino acid it encodes.
type TRNA struct {
	Codon     Codon
	AminoAcid AminoAcid
}

// Peptide is a chain of amino acids produced by translation.
type Peptide []AminoAcid
