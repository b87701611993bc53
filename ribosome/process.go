package main

import (
	"bytes"
	"fmt"

	"bitbucket.org/Davydov/ribosome/bio"
	"bitbucket.org/Davydov/ribosome/gcode"
	"bitbucket.org/Davydov/ribosome/store"
	"bitbucket.org/Davydov/ribosome/usage"
)

// processor transcribes and translates sequences with a single codon
// table and accumulates codon usage over all of them.
type processor struct {
	name   string
	digest string
	lookup bio.CodonLookup
	starts map[bio.Codon]bool
	store  *store.Store
	usage  *usage.Usage
}

func newProcessor(table bio.CodonTable, starts []bio.Codon, name string, index bool, st *store.Store) *processor {
	p := &processor{
		name:   name,
		digest: gcode.Digest(table),
		lookup: table,
		starts: make(map[bio.Codon]bool, len(starts)),
		store:  st,
		usage:  usage.New(),
	}
	if index {
		idx := table.Index()
		log.Debugf("Using codon index with %d codons", idx.Len())
		p.lookup = idx
	}
	for _, c := range starts {
		p.starts[c] = true
	}
	return p
}

// startCodons returns offsets of in-frame start codons.
func (p *processor) startCodons(rna bio.RNASequence) (pos []int) {
	for i, c := range rna.Codons() {
		if p.starts[c] {
			pos = append(pos, 3*i)
		}
	}
	return
}

// result is the outcome of processing one sequence.
type result struct {
	record  *store.Record
	peptide bio.Peptide
	starts  []int
	stored  bool
}

func (p *processor) process(seq bio.Sequence) (*result, error) {
	key := store.Key(seq.Name, p.digest)
	rec, err := p.store.Load(key)
	if err != nil {
		log.Warningf("%s: error loading stored record: %v", seq.Name, err)
	}
	if rec != nil && rec.DNA == seq.Sequence {
		if res, err := p.restore(rec); err == nil {
			log.Infof("%s: using stored result", seq.Name)
			return res, nil
		}
		log.Warningf("%s: stored record is unusable, translating again", seq.Name)
	}

	dna, err := bio.ParseDNA(seq.Sequence)
	if err != nil {
		return nil, err
	}
	rna := bio.Transcribe(dna)
	peptide, err := bio.Translate(p.lookup, rna)
	if err != nil {
		return nil, err
	}
	p.usage.Add(rna)

	rec = &store.Record{
		Name:       seq.Name,
		Table:      p.name,
		DNA:        dna.String(),
		Complement: bio.Complement(dna).String(),
		RNA:        rna.String(),
		Protein:    peptide.Abbreviations(),
		Letters:    peptide.Letters(),
		Unmatched:  bio.Unmatched(p.lookup, rna),
	}
	if len(rec.Unmatched) > 0 {
		log.Warningf("%s: %d codon(s) without table entry skipped at %v", seq.Name, len(rec.Unmatched), rec.Unmatched)
	}
	if n := len(rna) % 3; n != 0 {
		log.Infof("%s: %d trailing nucleotide(s) ignored", seq.Name, n)
	}

	if err := p.store.Save(key, rec); err != nil {
		log.Warningf("%s: result is not saved: %v", seq.Name, err)
	}
	return &result{record: rec, peptide: peptide, starts: p.startCodons(rna)}, nil
}

// restore rebuilds a result from a stored record by translating the
// stored mRNA again.
func (p *processor) restore(rec *store.Record) (*result, error) {
	rna, err := bio.ParseRNA(rec.RNA)
	if err != nil {
		return nil, err
	}
	peptide, err := bio.Translate(p.lookup, rna)
	if err != nil {
		return nil, err
	}
	if peptide.Abbreviations() != rec.Protein {
		return nil, fmt.Errorf("stored protein %s differs from %s", rec.Protein, peptide.Abbreviations())
	}
	p.usage.Add(rna)
	return &result{record: rec, peptide: peptide, starts: p.startCodons(rna), stored: true}, nil
}

// report formats the result for the terminal.
func (r *result) report() string {
	var b bytes.Buffer
	dna, _ := bio.ParseDNA(r.record.DNA)
	rna, _ := bio.ParseRNA(r.record.RNA)
	comp, _ := bio.ParseDNA(r.record.Complement)
	fmt.Fprintf(&b, ">%s\n", r.record.Name)
	fmt.Fprintf(&b, "Template DNA:\t%s\n", dna.Triplets())
	fmt.Fprintf(&b, "Complement:\t%s\n", comp.Triplets())
	fmt.Fprintf(&b, "mRNA:\t\t%s\n", rna.Triplets())
	if len(r.starts) > 0 {
		fmt.Fprintf(&b, "Start codons:\t%v\n", r.starts)
	}
	fmt.Fprintf(&b, "Amino Acids:\t%s\n", r.record.Protein)
	return b.String()
}

func (r *result) summary() RecordSummary {
	return RecordSummary{
		Name:          r.record.Name,
		DNALength:     len(r.record.DNA),
		ProteinLength: len(r.peptide),
		Unmatched:     len(r.record.Unmatched),
		Trailing:      len(r.record.RNA) % 3,
		Starts:        r.starts,
		Stored:        r.stored,
	}
}
