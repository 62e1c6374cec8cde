package rasqal

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// One factory serves both separated-values variants. The formatter's
// init hook records which name it was created under: "tsv" selects tab
// separation and full N-Triples term syntax, anything else the SPARQL
// 1.1 CSV shape (plain display values).
func registerSVFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"csv", "tsv"},
			Label: "Delimited Values (CSV, TSV)",
			URIs: []string{
				"http://www.w3.org/ns/formats/SPARQL_Results_CSV",
				"http://www.w3.org/ns/formats/SPARQL_Results_TSV",
			},
			MimeTypes: []MimeType{
				{Type: "text/csv", Q: 10},
				{Type: "text/tab-separated-values", Q: 10},
			},
		}
		fm.init = initSV
		fm.write = writeSV
		fm.rows = svRows
		fm.recognize = recognizeSV
		return nil
	})
	return err
}

type svState struct {
	tsv bool
}

func initSV(f *Formatter, name string) error {
	f.state = &svState{tsv: name == "tsv"}
	return nil
}

func writeSV(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	if results.Kind() == ResultsBoolean {
		_, err := fmt.Fprintf(w, "%t\n", results.Boolean())
		return err
	}
	if f.state.(*svState).tsv {
		return writeTSV(w, results)
	}
	return writeCSV(w, results)
}

func writeCSV(w io.Writer, results *Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(results.Variables().Names()); err != nil {
		return err
	}
	for {
		row, ok := results.NextRow()
		if !ok {
			break
		}
		record := make([]string, len(row))
		for i, term := range row {
			record[i] = term.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, results *Results) error {
	names := results.Variables().Names()
	header := make([]string, len(names))
	for i, name := range names {
		header[i] = "?" + name
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for {
		row, ok := results.NextRow()
		if !ok {
			break
		}
		fields := make([]string, len(row))
		for i, term := range row {
			fields[i] = term.N3()
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func svRows(f *Formatter, vars *VariableTable, r io.Reader, baseURI string) (RowSeq, error) {
	if f.state.(*svState).tsv {
		return tsvRows(vars, r)
	}
	return csvRows(vars, r)
}

// csvRows reads SPARQL CSV results. CSV carries no term syntax, so
// every non-empty field decodes to a plain literal; empty fields are
// unbound.
func csvRows(vars *VariableTable, r io.Reader) (RowSeq, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for _, name := range header {
		vars.Add(name)
	}
	return func(yield func(Row, error) bool) {
		for {
			record, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			row := make(Row, vars.Size())
			for i, field := range record {
				if i >= len(row) || field == "" {
					continue
				}
				row[i] = LiteralTerm(field)
			}
			if !yield(row, nil) {
				return
			}
		}
	}, nil
}

// tsvRows reads SPARQL TSV results: a ?-prefixed header line, then one
// N-Triples-syntax term per column.
func tsvRows(vars *VariableTable, r io.Reader) (RowSeq, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("reading TSV header: %w", io.ErrUnexpectedEOF)
	}
	for _, name := range strings.Split(sc.Text(), "\t") {
		vars.Add(strings.TrimPrefix(name, "?"))
	}
	return func(yield func(Row, error) bool) {
		for sc.Scan() {
			fields := strings.Split(sc.Text(), "\t")
			row := make(Row, vars.Size())
			for i, field := range fields {
				if i >= len(row) {
					break
				}
				term, err := ParseTermN3(field)
				if err != nil {
					yield(nil, err)
					return
				}
				row[i] = term
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, err)
		}
	}, nil
}

func recognizeSV(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "csv", "tsv":
		score += 7
	}
	// A ?-prefixed first line is the TSV header shape.
	if bytes.HasPrefix(sn.content, []byte("?")) && bytes.ContainsRune(sn.content, '\t') {
		score += 4
	}
	return score
}
