// Package gcode provides codon tables: NCBI genetic codes, either
// built in or parsed from the gc.prt ASN.1 file, and tables read
// from JSON.
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
package gcode

import (
	"fmt"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribosome/bio"
)

var log = logging.MustGetLogger("gcode")

// alphabet is the order in which NCBI enumerates codon positions.
var alphabet = [...]bio.RNANucleotide{bio.RnaU, bio.RnaC, bio.RnaA, bio.RnaG}

// GeneticCode is a single NCBI genetic code.
type GeneticCode struct {
	Name      string
	ShortName string
	ID        int
	// Ncbieaa holds 64 amino acid letters in TCAG order.
	Ncbieaa string
	// Sncbieaa marks start codons with 'M'.
	Sncbieaa string
}

func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	return &GeneticCode{
		Name:      name,
		ShortName: shortName,
		ID:        id,
		Ncbieaa:   ncbieaa,
		Sncbieaa:  sncbieaa,
	}
}

func (gc GeneticCode) String() string {
	return fmt.Sprintf("<GC: Name=\"%s\", ShortName=\"%s\", Id=%d, A=\"%s\", S=\"%s\">",
		gc.Name, gc.ShortName, gc.ID, gc.Ncbieaa, gc.Sncbieaa)
}

// codon returns i-th codon in NCBI order.
func codon(i int) bio.Codon {
	return bio.Codon{alphabet[i/16], alphabet[(i/4)%4], alphabet[i%4]}
}

// Table expands the genetic code into a codon table with one entry
// per codon, stop codons included.
func (gc GeneticCode) Table() (bio.CodonTable, error) {
	if len(gc.Ncbieaa) != 64 {
		return nil, fmt.Errorf("%w: genetic code %d has %d amino acids instead of 64",
			ErrMalformed, gc.ID, len(gc.Ncbieaa))
	}
	table := make(bio.CodonTable, 0, 64)
	for i := 0; i < 64; i++ {
		aa, ok := AminoAcids[gc.Ncbieaa[i]]
		if !ok {
			return nil, fmt.Errorf("%w: genetic code %d: unknown amino acid %q",
				ErrMalformed, gc.ID, gc.Ncbieaa[i])
		}
		table = append(table, bio.TRNA{Codon: codon(i), AminoAcid: aa})
	}
	log.Debugf("Genetic code %d expanded into %d codons", gc.ID, len(table))
	return table, nil
}

// Starts returns start codons of the genetic code.
func (gc GeneticCode) Starts() (starts []bio.Codon) {
	for i := 0; i < len(gc.Sncbieaa) && i < 64; i++ {
		if gc.Sncbieaa[i] == 'M' {
			starts = append(starts, codon(i))
		}
	}
	return
}

// GeneticCodes holds the built-in NCBI genetic codes by id.
var GeneticCodes = map[int]*GeneticCode{
	1: newGeneticCode(1,
		"Standard",
		"SGC0",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M---------------M----------------------------"),
	2: newGeneticCode(2,
		"Vertebrate Mitochondrial",
		"SGC1",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"----------**--------------------MMMM----------**---M------------"),
	3: newGeneticCode(3,
		"Yeast Mitochondrial",
		"SGC2",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**----------------------MM---------------M------------"),
	4: newGeneticCode(4,
		"Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		"SGC3",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--MM------**-------M------------MMMM---------------M------------"),
	11: newGeneticCode(11,
		"Bacterial, Archaeal and Plant Plastid",
		"",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M------------MMMM---------------M------------"),
}
