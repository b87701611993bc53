package bio

// CodonLookup finds the amino acid encoded by a codon.
type CodonLookup interface {
	Lookup(c Codon) (AminoAcid, bool)
}

// CodonTable is an ordered list of codon to amino acid pairings.
// Earlier entries take precedence over later ones.
type CodonTable []TRNA

// Lookup scans the table in order and returns the first entry
// matching c.
func (t CodonTable) Lookup(c Codon) (AminoAcid, bool) {
	for _, trna := range t {
		if trna.Codon == c {
			return trna.AminoAcid, true
		}
	}
	return AminoAcid{}, false
}

// Index builds a CodonIndex from the table.
func (t CodonTable) Index() *CodonIndex {
	idx := &CodonIndex{m: make(map[Codon]AminoAcid, len(t))}
	for _, trna := range t {
		// first match wins
		if _, ok := idx.m[trna.Codon]; ok {
			continue
		}
		idx.m[trna.Codon] = trna.AminoAcid
	}
	return idx
}

// CodonIndex is a codon table keyed by codon. It gives the same
// answers as the CodonTable it was built from.
type CodonIndex struct {
	m map[Codon]AminoAcid
}

// Lookup returns the amino acid for c.
func (idx *CodonIndex) Lookup(c Codon) (AminoAcid, bool) {
	aa, ok := idx.m[c]
	return aa, ok
}

// Len returns the number of distinct codons in the index.
func (idx *CodonIndex) Len() int {
	return len(idx.m)
}
