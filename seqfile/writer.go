// Package seqfile writes the assembled injection sequence as the
// tab-separated file Chromeleon imports.
package seqfile

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/MinkSieders/Chromeleon-Sequence-Writer/sequence"
)

// Row is one line of the sequence import file. The column set and order are
// fixed by the Chromeleon import format.
type Row struct {
	ED1      string  `csv:"ED_1"`
	Name     string  `csv:"Name"`
	Type     string  `csv:"Type"`
	Level    string  `csv:"Level"`
	Position string  `csv:"Position"`
	Volume   float64 `csv:"Volume [ul]"`
	Method   string  `csv:"Instrument Method"`
}

// Write emits the entries, already in injection order, to path.
func Write(path string, entries []sequence.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := WriteTo(f, entries); err != nil {
		return err
	}
	return pfx.Err(f.Close())
}

// WriteTo emits the sequence rows to an arbitrary writer.
func WriteTo(w io.Writer, entries []sequence.Entry) error {
	rows := make([]*Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, &Row{
			ED1:      "None",
			Name:     e.Name,
			Type:     "Unknown",
			Position: e.Position,
			Volume:   e.Volume,
			Method:   e.Method,
		})
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = '\t'
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.Marshal(&rows, w); err != nil {
		return pfx.Err(err)
	}
	return nil
}
