/*

Ribosome transcribes template DNA into mRNA and translates it into
amino acids using a codon table.

The basic usage of ribosome looks like this:

	ribosome sequences.fst

, this will transcribe and translate every record using the standard
genetic code. A single sequence can be given on the command line:

	ribosome --dna TACCTTGGGGAATATACACGCTGGCTTCGATGAATC

Other NCBI genetic codes are selected with --gcode, a custom codon
table is read from JSON with --table.

To see all the options run:

	ribosome -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribosome/bio"
	"bitbucket.org/Davydov/ribosome/gcode"
	"bitbucket.org/Davydov/ribosome/store"
	"bitbucket.org/Davydov/ribosome/usage"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("ribosome")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("ribosome", "DNA transcription and translation").Version(version)

	// input
	fastaFileName = app.Arg("fasta", "FASTA file with template DNA sequences").ExistingFile()
	dnaString     = app.Flag("dna", "template DNA sequence (instead of a FASTA file)").Envar("RIBOSOME_DNA").String()

	// codon table
	gcodeID       = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Envar("RIBOSOME_GCODE").Int()
	tableFileName = app.Flag("table", "JSON codon table (overrides --gcode)").Envar("RIBOSOME_TABLE").ExistingFile()
	asn1FileName  = app.Flag("asn1", "NCBI genetic codes file (gc.prt) to take --gcode from").Envar("RIBOSOME_ASN1").ExistingFile()
	index         = app.Flag("index", "use a codon-keyed index instead of scanning the table").Envar("RIBOSOME_INDEX").Bool()

	// input/output
	dbFileName    = app.Flag("db", "results database; stored records are not translated again").Envar("RIBOSOME_DB").String()
	outF          = app.Flag("out", "write translated proteins in FASTA format to a file").Envar("RIBOSOME_OUT").String()
	usageF        = app.Flag("usage", "write codon usage and RSCU to a file").Envar("RIBOSOME_USAGE").String()
	plotF         = app.Flag("plot", "plot amino acid composition to a file (png, svg or pdf)").Envar("RIBOSOME_PLOT").String()
	writeTableF   = app.Flag("writetable", "write the codon table in JSON format to a file").Envar("RIBOSOME_WRITETABLE").String()
	jsonF         = app.Flag("json", "write json output to a file").Envar("RIBOSOME_JSON").String()
	outLogF       = app.Flag("log", "write log to a file").Envar("RIBOSOME_LOG").String()
	logLevel      = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Envar("RIBOSOME_LOGLEVEL").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// readInput returns sequences either from the command line or from
// the FASTA file.
func readInput() (bio.Sequences, error) {
	if *dnaString != "" {
		return bio.Sequences{{Name: "dna", Sequence: *dnaString}}, nil
	}
	if *fastaFileName == "" {
		return nil, fmt.Errorf("either FASTA file or --dna is required")
	}
	f, err := os.Open(*fastaFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bio.ParseFasta(f)
}

// create opens a file for writing, "-" is the standard output.
func create(fn string) (io.WriteCloser, error) {
	if fn == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(fn)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writeProteins writes proteins in FASTA format.
func writeProteins(fn string, proteins bio.Sequences) error {
	f, err := create(fn)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, proteins); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{}

	src := tableSource{
		gcodeID:  *gcodeID,
		jsonFile: *tableFileName,
		asn1File: *asn1FileName,
	}
	table, starts, err := src.load()
	if err != nil {
		log.Fatal(err)
	}
	summary.Table = src.String()
	log.Infof("Codon table: %s, %d entries", src, len(table))

	if *writeTableF != "" {
		f, err := create(*writeTableF)
		if err != nil {
			log.Fatal("Error creating table file:", err)
		}
		err = gcode.WriteJSON(f, table)
		f.Close()
		if err != nil {
			log.Fatal("Error writing table file:", err)
		}
	}

	seqs, err := readInput()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Read %d sequence(s)", len(seqs))

	st := store.New(nil)
	if *dbFileName != "" {
		st, err = store.Open(*dbFileName)
		if err != nil {
			log.Fatal("Error opening database:", err)
		}
		if keys, err := st.Keys(); err == nil {
			log.Debugf("Database has %d stored record(s)", len(keys))
		}
	}
	defer st.Close()

	// fatal closes the database, log.Fatal skips deferred calls
	fatal := func(args ...interface{}) {
		st.Close()
		log.Fatal(args...)
	}

	p := newProcessor(table, starts, src.String(), *index, st)

	var proteins bio.Sequences
	var peptides []bio.Peptide
	for _, seq := range seqs {
		res, err := p.process(seq)
		if err != nil {
			fatal(fmt.Sprintf("%s: %v", seq.Name, err))
		}
		fmt.Print(res.report())
		summary.Records = append(summary.Records, res.summary())
		peptides = append(peptides, res.peptide)
		proteins = append(proteins, bio.Sequence{Name: seq.Name, Sequence: res.record.Letters})
	}

	summary.MeanLength, summary.SDLength = usage.LengthStats(peptides)
	log.Noticef("Translated %d sequence(s), mean protein length %.1f", len(peptides), summary.MeanLength)

	if *outF != "" {
		if err := writeProteins(*outF, proteins); err != nil {
			fatal("Error writing protein file:", err)
		}
	}

	if *usageF != "" {
		f, err := create(*usageF)
		if err != nil {
			fatal("Error creating codon usage file:", err)
		}
		if err := p.usage.Write(f, p.lookup); err != nil {
			log.Error("Error writing codon usage:", err)
		}
		f.Close()
	}

	if *plotF != "" {
		comp := usage.NewComposition(peptides...)
		if err := usage.PlotComposition(comp, "Amino acid composition", *plotF); err != nil {
			log.Error("Error plotting composition:", err)
		}
	}

	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range []string{"ribosome", "gcode", "store", "usage"} {
		logging.SetLevel(level, module)
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
