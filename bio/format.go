package bio

import "strings"

func (dna DNASequence) String() string {
	b := make([]byte, len(dna))
	for i, n := range dna {
		b[i] = n.Byte()
	}
	return string(b)
}

func (rna RNASequence) String() string {
	b := make([]byte, len(rna))
	for i, n := range rna {
		b[i] = n.Byte()
	}
	return string(b)
}

// Triplets returns the sequence split into codons separated by
// slashes, e.g. TAC/CTT/GG.
func (dna DNASequence) Triplets() string {
	return triplets(dna.String())
}

// Triplets returns the sequence split into codons separated by
// slashes, e.g. AUG/GAA/CC.
func (rna RNASequence) Triplets() string {
	return triplets(rna.String())
}

func triplets(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i += 3 {
		if i > 0 {
			b.WriteByte('/')
		}
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// Abbreviations returns three-letter codes joined by dashes,
// e.g. Met-Glu-Pro.
func (p Peptide) Abbreviations() string {
	abbrs := make([]string, len(p))
	for i, aa := range p {
		abbrs[i] = aa.Abbr()
	}
	return strings.Join(abbrs, "-")
}

// Letters returns the one-letter representation of the peptide.
func (p Peptide) Letters() string {
	b := make([]byte, len(p))
	for i, aa := range p {
		b[i] = aa.Letter
	}
	return string(b)
}

func (p Peptide) String() string {
	return p.Abbreviations()
}
