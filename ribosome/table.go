package main

import (
	"fmt"
	"os"

	"bitbucket.org/Davydov/ribosome/bio"
	"bitbucket.org/Davydov/ribosome/gcode"
)

// tableSource describes where the codon table comes from.
type tableSource struct {
	gcodeID  int
	jsonFile string
	asn1File string
}

func (s tableSource) String() string {
	if s.jsonFile != "" {
		return "json:" + s.jsonFile
	}
	if s.asn1File != "" {
		return fmt.Sprintf("asn1:%s:%d", s.asn1File, s.gcodeID)
	}
	return fmt.Sprintf("gcode:%d", s.gcodeID)
}

// load reads the codon table. Start codons are only known for NCBI
// genetic codes.
func (s tableSource) load() (bio.CodonTable, []bio.Codon, error) {
	if s.jsonFile != "" {
		table, err := gcode.ReadJSONFile(s.jsonFile)
		return table, nil, err
	}

	gcodes := gcode.GeneticCodes
	if s.asn1File != "" {
		f, err := os.Open(s.asn1File)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		parsed, err := gcode.ParseASN1(f)
		if err != nil {
			return nil, nil, err
		}
		gcodes = make(map[int]*gcode.GeneticCode, len(parsed))
		for _, gc := range parsed {
			gcodes[gc.ID] = gc
		}
	}

	gc, ok := gcodes[s.gcodeID]
	if !ok {
		return nil, nil, fmt.Errorf("couldn't load genetic code with id=%d", s.gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gc.ID, gc.Name)
	table, err := gc.Table()
	if err != nil {
		return nil, nil, err
	}
	return table, gc.Starts(), nil
}
