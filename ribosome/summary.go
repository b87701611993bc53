package main

// RecordSummary describes processing of a single sequence.
type RecordSummary struct {
	// Name is the FASTA header of the record.
	Name string `json:"name"`
	// DNALength is the number of nucleotides in the template.
	DNALength int `json:"dnaLength"`
	// ProteinLength is the number of translated amino acids.
	ProteinLength int `json:"proteinLength"`
	// Unmatched is the number of codons without a table entry.
	Unmatched int `json:"unmatched,omitempty"`
	// Trailing is the number of nucleotides after the last full codon.
	Trailing int `json:"trailing,omitempty"`
	// Starts holds offsets of in-frame start codons.
	Starts []int `json:"starts,omitempty"`
	// Stored is true if the result was taken from the database.
	Stored bool `json:"stored,omitempty"`
}

// RunSummary is storing ribosome run summary information.
type RunSummary struct {
	// Version stores ribosome version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Table describes the codon table used.
	Table string `json:"table"`
	// Records holds per-sequence summaries.
	Records []RecordSummary `json:"records"`
	// MeanLength and SDLength describe peptide lengths.
	MeanLength float64 `json:"meanLength"`
	SDLength   float64 `json:"sdLength"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}
