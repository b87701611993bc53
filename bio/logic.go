package bio

import (
	"errors"
	"fmt"
)

// ErrInsufficientInput is returned when a sequence is shorter than
// one codon.
var ErrInsufficientInput = errors.New("not enough nucleotides for translation")

// Complement returns the complementary DNA strand (A<->T, C<->G).
func Complement(dna DNASequence) DNASequence {
	res := make(DNASequence, len(dna))
	for i, n := range dna {
		res[i] = dnaComplement[n]
	}
	return res
}

// Transcribe transcribes a template DNA strand into mRNA
// (A->U, T->A, C->G, G->C).
func Transcribe(dna DNASequence) RNASequence {
	res := make(RNASequence, len(dna))
	for i, n := range dna {
		res[i] = dnaToRNA[n]
	}
	return res
}

// Translate translates mRNA into a peptide, reading codons from the
// first nucleotide. Trailing nucleotides which do not form a full
// codon are ignored, so are codons missing from the lookup.
func Translate(lookup CodonLookup, rna RNASequence) (Peptide, error) {
	if len(rna) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientInput, len(rna))
	}

	res := make(Peptide, 0, len(rna)/3)
	for i := 0; i+3 <= len(rna); i += 3 {
		aa, ok := lookup.Lookup(Codon{rna[i], rna[i+1], rna[i+2]})
		if !ok {
			continue
		}
		res = append(res, aa)
	}
	return res, nil
}

// Unmatched returns offsets of the codons which Translate skips
// because lookup has no entry for them.
func Unmatched(lookup CodonLookup, rna RNASequence) (pos []int) {
	for i := 0; i+3 <= len(rna); i += 3 {
		if _, ok := lookup.Lookup(Codon{rna[i], rna[i+1], rna[i+2]}); !ok {
			pos = append(pos, i)
		}
	}
	return
}

// Codons splits rna into complete codons.
func (rna RNASequence) Codons() []Codon {
	res := make([]Codon, 0, len(rna)/3)
	for i := 0; i+3 <= len(rna); i += 3 {
		res = append(res, Codon{rna[i], rna[i+1], rna[i+2]})
	}
	return res
}
