package gcode

import "bitbucket.org/Davydov/ribosome/bio"

func aa(abbr string, letter byte, name string) bio.AminoAcid {
	a, err := bio.NewAminoAcid(abbr, letter, name)
	if err != nil {
		panic(err)
	}
	return a
}

// AminoAcids maps one-letter codes (as used in NCBI genetic codes)
// to amino acids. Stop codons are '*'.
var AminoAcids = map[byte]bio.AminoAcid{
	'A': aa("Ala", 'A', "Alanine"),
	'R': aa("Arg", 'R', "Arginine"),
	'N': aa("Asn", 'N', "Asparagine"),
	'D': aa("Asp", 'D', "Aspartic acid"),
	'C': aa("Cys", 'C', "Cysteine"),
	'Q': aa("Gln", 'Q', "Glutamine"),
	'E': aa("Glu", 'E', "Glutamic acid"),
	'G': aa("Gly", 'G', "Glycine"),
	'H': aa("His", 'H', "Histidine"),
	'I': aa("Ile", 'I', "Isoleucine"),
	'L': aa("Leu", 'L', "Leucine"),
	'K': aa("Lys", 'K', "Lysine"),
	'M': aa("Met", 'M', "Methionine"),
	'F': aa("Phe", 'F', "Phenylalanine"),
	'P': aa("Pro", 'P', "Proline"),
	'S': aa("Ser", 'S', "Serine"),
	'T': aa("Thr", 'T', "Threonine"),
	'W': aa("Trp", 'W', "Tryptophan"),
	'Y': aa("Tyr", 'Y', "Tyrosine"),
	'V': aa("Val", 'V', "Valine"),
	'U': aa("Sec", 'U', "Selenocysteine"),
	'O': aa("Pyl", 'O', "Pyrrolysine"),
	'*': aa("Ter", '*', "Stop"),
}
