package rasqal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func registerJSONFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"json", "srj"},
			Label: "SPARQL Query Results JSON",
			URIs: []string{
				"http://www.w3.org/TR/sparql11-results-json/",
				"http://www.w3.org/2001/sw/DataAccess/json-sparql/",
			},
			MimeTypes: []MimeType{
				{Type: "application/sparql-results+json", Q: 10},
				{Type: "application/json", Q: 5},
				{Type: "text/json", Q: 1},
			},
		}
		fm.write = writeSPARQLJSON
		fm.rows = sparqlJSONRows
		fm.recognize = recognizeSPARQLJSON
		return nil
	})
	return err
}

// srjDocument mirrors the SPARQL 1.1 Query Results JSON document. The
// same shape, under yaml tags, backs the YAML result format.
type srjDocument struct {
	Head    srjHead     `json:"head" yaml:"head"`
	Results *srjResults `json:"results,omitempty" yaml:"results,omitempty"`
	Boolean *bool       `json:"boolean,omitempty" yaml:"boolean,omitempty"`
}

type srjHead struct {
	Vars []string `json:"vars,omitempty" yaml:"vars,omitempty"`
}

type srjResults struct {
	Bindings []map[string]srjTerm `json:"bindings" yaml:"bindings"`
}

type srjTerm struct {
	Type     string `json:"type" yaml:"type"`
	Value    string `json:"value" yaml:"value"`
	Datatype string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty" yaml:"xml:lang,omitempty"`
}

// srjDocumentFor drains results into the interchange document.
func srjDocumentFor(results *Results) *srjDocument {
	doc := &srjDocument{}
	if results.Kind() == ResultsBoolean {
		v := results.Boolean()
		doc.Boolean = &v
		return doc
	}
	names := results.Variables().Names()
	doc.Head.Vars = names
	doc.Results = &srjResults{Bindings: []map[string]srjTerm{}}
	for {
		row, ok := results.NextRow()
		if !ok {
			break
		}
		binding := make(map[string]srjTerm, len(row))
		for i, term := range row {
			if term == nil || i >= len(names) {
				continue
			}
			binding[names[i]] = srjTermFor(term)
		}
		doc.Results.Bindings = append(doc.Results.Bindings, binding)
	}
	return doc
}

func srjTermFor(t *Term) srjTerm {
	switch t.Kind {
	case TermURI:
		return srjTerm{Type: "uri", Value: t.Value}
	case TermBlank:
		return srjTerm{Type: "bnode", Value: t.Value}
	}
	return srjTerm{Type: "literal", Value: t.Value, Datatype: t.Datatype, Lang: t.Language}
}

func (st srjTerm) term() (*Term, error) {
	switch st.Type {
	case "uri":
		return URITerm(st.Value), nil
	case "bnode":
		return BlankTerm(st.Value), nil
	case "literal", "typed-literal":
		switch {
		case st.Lang != "":
			return LangLiteralTerm(st.Value, st.Lang), nil
		case st.Datatype != "":
			return TypedLiteralTerm(st.Value, st.Datatype), nil
		}
		return LiteralTerm(st.Value), nil
	}
	return nil, fmt.Errorf("unknown term type %q", st.Type)
}

// srjDocumentRows turns a decoded document into the row sequence shared
// by the JSON and YAML readers.
func srjDocumentRows(doc *srjDocument, vars *VariableTable) (RowSeq, error) {
	if doc.Boolean != nil {
		return nil, ErrNotBindings
	}
	for _, name := range doc.Head.Vars {
		vars.Add(name)
	}
	return func(yield func(Row, error) bool) {
		if doc.Results == nil {
			return
		}
		for _, binding := range doc.Results.Bindings {
			row := make(Row, vars.Size())
			for name, st := range binding {
				i, ok := vars.Offset(name)
				if !ok {
					i = vars.Add(name)
					row = append(row, nil)
				}
				term, err := st.term()
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
	}, nil
}

func writeSPARQLJSON(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(srjDocumentFor(results))
}

func sparqlJSONRows(f *Formatter, vars *VariableTable, r io.Reader, baseURI string) (RowSeq, error) {
	var doc srjDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return srjDocumentRows(&doc, vars)
}

func recognizeSPARQLJSON(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "srj":
		score += 8
	case "json":
		score += 4
	}
	if bytes.Contains(sn.content, []byte(`"head"`)) &&
		(bytes.Contains(sn.content, []byte(`"results"`)) ||
			bytes.Contains(sn.content, []byte(`"boolean"`))) {
		score += 6
	}
	return score
}
