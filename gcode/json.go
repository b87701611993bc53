package gcode

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"bitbucket.org/Davydov/ribosome/bio"
)

// ErrMalformed is returned for codon table data which cannot be
// converted into a codon table.
var ErrMalformed = errors.New("malformed codon table")

func malformed(msg string) error {
	return fmt.Errorf("%w: %s", ErrMalformed, msg)
}

// jsonTRNA is a codon table entry as stored in JSON, e.g.
// {"codon": "AUG", "amino_acid": "Met", "letter": "M", "full_name": "Methionine"}.
type jsonTRNA struct {
	Codon     string `json:"codon"`
	AminoAcid string `json:"amino_acid"`
	Letter    string `json:"letter"`
	FullName  string `json:"full_name"`
}

// ReadJSON reads a codon table stored as a JSON array.
func ReadJSON(rd io.Reader) (bio.CodonTable, error) {
	var entries []jsonTRNA
	if err := json.NewDecoder(rd).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	table := make(bio.CodonTable, 0, len(entries))
	for i, e := range entries {
		codon, err := bio.ParseCodon(e.Codon)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		if len(e.Letter) != 1 {
			return nil, fmt.Errorf("%w: entry %d: letter %q is not a single ASCII character", ErrMalformed, i, e.Letter)
		}
		aa, err := bio.NewAminoAcid(e.AminoAcid, e.Letter[0], e.FullName)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		table = append(table, bio.TRNA{Codon: codon, AminoAcid: aa})
	}
	log.Debugf("Read %d codon table entries", len(table))
	return table, nil
}

// ReadJSONFile reads a JSON codon table from a file.
func ReadJSONFile(fn string) (bio.CodonTable, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON writes a codon table in the format accepted by ReadJSON.
func WriteJSON(w io.Writer, table bio.CodonTable) error {
	entries := make([]jsonTRNA, len(table))
	for i, trna := range table {
		entries[i] = jsonTRNA{
			Codon:     trna.Codon.String(),
			AminoAcid: trna.AminoAcid.Abbr(),
			Letter:    string(trna.AminoAcid.Letter),
			FullName:  trna.AminoAcid.Name,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// Digest identifies a codon table by its content: two tables have the
// same digest only if they have the same entries in the same order.
func Digest(table bio.CodonTable) string {
	h := sha256.New()
	// writes to a hash never fail
	WriteJSON(h, table)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
