package usage

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/ribosome/bio"
)

// Composition is the number of each amino acid in a set of peptides,
// sorted by abbreviation.
type Composition struct {
	Abbrs  []string
	Counts []float64
}

// NewComposition counts amino acids of the peptides.
func NewComposition(peptides ...bio.Peptide) *Composition {
	m := map[string]float64{}
	for _, p := range peptides {
		for _, aa := range p {
			m[aa.Abbr()]++
		}
	}

	c := &Composition{
		Abbrs:  make([]string, 0, len(m)),
		Counts: make([]float64, 0, len(m)),
	}
	for abbr := range m {
		c.Abbrs = append(c.Abbrs, abbr)
	}
	sort.Strings(c.Abbrs)
	for _, abbr := range c.Abbrs {
		c.Counts = append(c.Counts, m[abbr])
	}
	return c
}

// Fractions returns counts normalized to sum to one.
func (c *Composition) Fractions() []float64 {
	fr := make([]float64, len(c.Counts))
	copy(fr, c.Counts)
	if sum := floats.Sum(fr); sum > 0 {
		floats.Scale(1/sum, fr)
	}
	return fr
}

// LengthStats returns the mean and standard deviation of peptide
// lengths.
func LengthStats(peptides []bio.Peptide) (mean, std float64) {
	if len(peptides) == 0 {
		return 0, 0
	}
	lengths := make([]float64, len(peptides))
	for i, p := range peptides {
		lengths[i] = float64(len(p))
	}
	if len(lengths) == 1 {
		return lengths[0], 0
	}
	return stat.MeanStdDev(lengths, nil)
}

// PlotComposition saves a bar chart of amino acid fractions. The
// image format is deduced from the file extension (png, svg, pdf, ...).
func PlotComposition(c *Composition, title, fn string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Fraction"

	bars, err := plotter.NewBarChart(plotter.Values(c.Fractions()), vg.Points(12))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(c.Abbrs...)

	width := vg.Length(len(c.Abbrs)+4) * vg.Points(18)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	log.Debugf("Saving composition plot to %s", fn)
	return p.Save(width, 4*vg.Inch, fn)
}
