// Package usage computes codon usage, relative synonymous codon usage
// (RSCU) and amino acid composition.
package usage

import (
	"fmt"
	"io"

	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribosome/bio"
)

var log = logging.MustGetLogger("usage")

// order maps bases to the TCAG order used in genetic code tables.
var order = [...]int{bio.RnaU: 0, bio.RnaC: 1, bio.RnaA: 2, bio.RnaG: 3}

var alphabet = [...]bio.RNANucleotide{bio.RnaU, bio.RnaC, bio.RnaA, bio.RnaG}

func pos(c bio.Codon) (row, col int) {
	return order[c[0]]*4 + order[c[1]], order[c[2]]
}

func codonAt(row, col int) bio.Codon {
	return bio.Codon{alphabet[row/4], alphabet[row%4], alphabet[col]}
}

// Usage holds codon counts in a 16x4 matrix laid out like the
// standard genetic code table: rows are the first two bases, columns
// are the third base.
type Usage struct {
	Counts *mat64.Dense
}

// New creates an empty Usage.
func New() *Usage {
	return &Usage{Counts: mat64.NewDense(16, 4, nil)}
}

// Count counts complete codons of rna.
func Count(rna bio.RNASequence) *Usage {
	u := New()
	u.Add(rna)
	return u
}

// Add adds codons of rna to the counts.
func (u *Usage) Add(rna bio.RNASequence) {
	for _, c := range rna.Codons() {
		i, j := pos(c)
		u.Counts.Set(i, j, u.Counts.At(i, j)+1)
	}
}

// Get returns the count of a codon.
func (u *Usage) Get(c bio.Codon) float64 {
	i, j := pos(c)
	return u.Counts.At(i, j)
}

// Total returns the number of counted codons.
func (u *Usage) Total() float64 {
	return mat64.Sum(u.Counts)
}

// RSCU computes relative synonymous codon usage: the count of each
// codon divided by the mean count of all codons coding for the same
// amino acid. Codons absent from the table or coding for an amino
// acid which was never observed get zero.
func (u *Usage) RSCU(lookup bio.CodonLookup) *mat64.Dense {
	type family struct {
		n     int
		total float64
	}
	families := map[[3]byte]*family{}
	for i := 0; i < 16; i++ {
		for j := 0; j < 4; j++ {
			aa, ok := lookup.Lookup(codonAt(i, j))
			if !ok {
				continue
			}
			f := families[aa.Abbreviation]
			if f == nil {
				f = &family{}
				families[aa.Abbreviation] = f
			}
			f.n++
			f.total += u.Counts.At(i, j)
		}
	}

	rscu := mat64.NewDense(16, 4, nil)
	rscu.Apply(func(i, j int, v float64) float64 {
		aa, ok := lookup.Lookup(codonAt(i, j))
		if !ok {
			return 0
		}
		f := families[aa.Abbreviation]
		if f.total == 0 {
			return 0
		}
		return v * float64(f.n) / f.total
	}, u.Counts)
	log.Debugf("RSCU:\n%v", mat64.Formatted(rscu, mat64.Squeeze()))
	return rscu
}

// Write writes a tab separated codon usage table: codon, amino acid,
// count and RSCU.
func (u *Usage) Write(w io.Writer, lookup bio.CodonLookup) error {
	rscu := u.RSCU(lookup)
	if _, err := fmt.Fprintln(w, "codon\tamino_acid\tcount\trscu"); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		for j := 0; j < 4; j++ {
			c := codonAt(i, j)
			abbr := "-"
			if aa, ok := lookup.Lookup(c); ok {
				abbr = aa.Abbr()
			}
			_, err := fmt.Fprintf(w, "%s\t%s\t%g\t%.3f\n", c, abbr, u.Get(c), rscu.At(i, j))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
