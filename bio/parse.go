package bio

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when a letter is not part of the
// nucleotide alphabet.
var ErrUnknownSymbol = errors.New("unknown nucleotide")

var (
	rDNA = map[rune]DNANucleotide{'A': DnaA, 'T': DnaT, 'C': DnaC, 'G': DnaG}
	rRNA = map[rune]RNANucleotide{'A': RnaA, 'U': RnaU, 'C': RnaC, 'G': RnaG}
)

// ParseDNA converts a string of capital letters into a DNA sequence.
func ParseDNA(s string) (DNASequence, error) {
	res := make(DNASequence, 0, len(s))
	// i counts letters, not bytes
	i := 0
	for _, c := range s {
		n, ok := rDNA[c]
		if !ok {
			return nil, fmt.Errorf("%w: DNA %q at position %d", ErrUnknownSymbol, c, i)
		}
		res = append(res, n)
		i++
	}
	return res, nil
}

// ParseRNA converts a string of capital letters into an RNA sequence.
func ParseRNA(s string) (RNASequence, error) {
	res := make(RNASequence, 0, len(s))
	// i counts letters, not bytes
	i := 0
	for _, c := range s {
		n, ok := rRNA[c]
		if !ok {
			return nil, fmt.Errorf("%w: RNA %q at position %d", ErrUnknownSymbol, c, i)
		}
		res = append(res, n)
		i++
	}
	return res, nil
}

// ParseCodon parses exactly three RNA letters.
func ParseCodon(s string) (c Codon, err error) {
	if len(s) != 3 {
		return c, fmt.Errorf("codon %q is not of length 3", s)
	}
	rna, err := ParseRNA(s)
	if err != nil {
		return c, err
	}
	copy(c[:], rna)
	return c, nil
}

// NewAminoAcid creates an amino acid from its three-letter
// abbreviation, one-letter code and name.
func NewAminoAcid(abbr string, letter byte, name string) (aa AminoAcid, err error) {
	if len(abbr) != 3 {
		return aa, fmt.Errorf("amino acid abbreviation %q is not of length 3", abbr)
	}
	copy(aa.Abbreviation[:], abbr)
	aa.Letter = letter
	aa.Name = name
	return aa, nil
}
