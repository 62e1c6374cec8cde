package rasqal

import (
	"io"

	"gopkg.in/yaml.v3"
)

// The YAML result format renders the same document shape as the SPARQL
// JSON results format, so the two readers share their row decoding.
func registerYAMLFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"yaml", "yml"},
			Label: "SPARQL Query Results YAML",
			MimeTypes: []MimeType{
				{Type: "application/yaml", Q: 6},
				{Type: "text/yaml", Q: 3},
			},
		}
		fm.write = writeSPARQLYAML
		fm.rows = sparqlYAMLRows
		fm.recognize = recognizeSPARQLYAML
		return nil
	})
	return err
}

func writeSPARQLYAML(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(srjDocumentFor(results)); err != nil {
		return err
	}
	return enc.Close()
}

func sparqlYAMLRows(f *Formatter, vars *VariableTable, r io.Reader, baseURI string) (RowSeq, error) {
	var doc srjDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return srjDocumentRows(&doc, vars)
}

func recognizeSPARQLYAML(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "yaml", "yml":
		score += 7
	}
	return score
}
