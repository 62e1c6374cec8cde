package rasqal

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// sparqlResultsNS is the SPARQL Query Results XML namespace.
const sparqlResultsNS = "http://www.w3.org/2005/sparql-results#"

func registerXMLFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"xml"},
			Label: "SPARQL Query Results XML",
			URIs: []string{
				"http://www.w3.org/TR/rdf-sparql-XMLres/",
				sparqlResultsNS,
			},
			MimeTypes: []MimeType{
				{Type: "application/sparql-results+xml", Q: 10},
				{Type: "application/xml", Q: 3},
			},
		}
		fm.write = writeSPARQLXML
		fm.rows = sparqlXMLRows
		fm.recognize = recognizeSPARQLXML
		return nil
	})
	return err
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func writeSPARQLXML(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<sparql xmlns=%q>\n", sparqlResultsNS); err != nil {
		return err
	}

	if results.Kind() == ResultsBoolean {
		if _, err := fmt.Fprintf(w, "  <head></head>\n  <boolean>%t</boolean>\n</sparql>\n", results.Boolean()); err != nil {
			return err
		}
		return nil
	}

	names := results.Variables().Names()
	if _, err := fmt.Fprintln(w, "  <head>"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "    <variable name=%q/>\n", xmlEscape(name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </head>\n  <results>"); err != nil {
		return err
	}

	for {
		row, ok := results.NextRow()
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(w, "    <result>"); err != nil {
			return err
		}
		for i, term := range row {
			if term == nil || i >= len(names) {
				continue
			}
			if _, err := fmt.Fprintf(w, "      <binding name=%q>%s</binding>\n",
				xmlEscape(names[i]), sparqlXMLTerm(term)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </result>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "  </results>\n</sparql>")
	return err
}

func sparqlXMLTerm(t *Term) string {
	switch t.Kind {
	case TermURI:
		return "<uri>" + xmlEscape(t.Value) + "</uri>"
	case TermBlank:
		return "<bnode>" + xmlEscape(t.Value) + "</bnode>"
	}
	switch {
	case t.Language != "":
		return fmt.Sprintf("<literal xml:lang=%q>%s</literal>", t.Language, xmlEscape(t.Value))
	case t.Datatype != "":
		return fmt.Sprintf("<literal datatype=%q>%s</literal>", xmlEscape(t.Datatype), xmlEscape(t.Value))
	}
	return "<literal>" + xmlEscape(t.Value) + "</literal>"
}

// sparqlXMLRows decodes a SPARQL XML results document lazily: head
// variables are registered as they appear and each <result> is yielded
// as soon as its end tag is seen.
func sparqlXMLRows(f *Formatter, vars *VariableTable, r io.Reader, baseURI string) (RowSeq, error) {
	dec := xml.NewDecoder(r)
	return func(yield func(Row, error) bool) {
		var row Row
		offset := -1
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			switch t := tok.(type) {
			case xml.StartElement:
				switch t.Name.Local {
				case "variable":
					for _, a := range t.Attr {
						if a.Name.Local == "name" {
							vars.Add(a.Value)
						}
					}
				case "boolean":
					yield(nil, ErrNotBindings)
					return
				case "result":
					row = make(Row, vars.Size())
				case "binding":
					offset = -1
					for _, a := range t.Attr {
						if a.Name.Local != "name" {
							continue
						}
						i, ok := vars.Offset(a.Value)
						if !ok {
							yield(nil, fmt.Errorf("binding for undeclared variable %q", a.Value))
							return
						}
						offset = i
					}
				case "uri", "bnode", "literal":
					term, err := decodeSPARQLXMLTerm(dec, t)
					if err != nil {
						yield(nil, err)
						return
					}
					if row != nil && offset >= 0 && offset < len(row) {
						row[offset] = term
					}
				}
			case xml.EndElement:
				if t.Name.Local == "result" && row != nil {
					if !yield(row, nil) {
						return
					}
					row = nil
				}
			}
		}
	}, nil
}

func decodeSPARQLXMLTerm(dec *xml.Decoder, start xml.StartElement) (*Term, error) {
	var content struct {
		Datatype string `xml:"datatype,attr"`
		Lang     string `xml:"lang,attr"`
		Value    string `xml:",chardata"`
	}
	if err := dec.DecodeElement(&content, &start); err != nil {
		return nil, err
	}
	switch start.Name.Local {
	case "uri":
		return URITerm(content.Value), nil
	case "bnode":
		return BlankTerm(content.Value), nil
	}
	switch {
	case content.Lang != "":
		return LangLiteralTerm(content.Value, content.Lang), nil
	case content.Datatype != "":
		return TypedLiteralTerm(content.Value, content.Datatype), nil
	}
	return LiteralTerm(content.Value), nil
}

func recognizeSPARQLXML(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "srx":
		score += 8
	case "xml":
		score += 3
	}
	if bytes.Contains(sn.content, []byte("<sparql")) {
		score += 5
	}
	if bytes.Contains(sn.content, []byte(sparqlResultsNS)) {
		score += 3
	}
	return score
}
