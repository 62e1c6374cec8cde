package rasqal

import (
	"bytes"
	"fmt"
	"io"
)

func registerRDFFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"rdfxml"},
			Label: "RDF Result Set (RDF/XML)",
			URIs: []string{
				"http://www.w3.org/ns/formats/RDF_XML",
			},
			MimeTypes: []MimeType{
				{Type: "application/rdf+xml", Q: 10},
			},
		}
		fm.write = writeResultsRDFXML
		return nil
	})
	return err
}

// writeResultsRDFXML serializes the same result-set vocabulary graph as
// the Turtle format, in RDF/XML.
func writeResultsRDFXML(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&buf, "<rdf:RDF xmlns:rdf=%q xmlns:rs=%q>\n", rdfNS, resultSetNS)
	buf.WriteString("  <rs:ResultSet>\n")

	if results.Kind() == ResultsBoolean {
		fmt.Fprintf(&buf, "    <rs:boolean rdf:datatype=%q>%t</rs:boolean>\n",
			XSDNamespace+"boolean", results.Boolean())
	} else {
		names := results.Variables().Names()
		for _, name := range names {
			fmt.Fprintf(&buf, "    <rs:resultVariable>%s</rs:resultVariable>\n", xmlEscape(name))
		}
		for index := 1; ; index++ {
			row, ok := results.NextRow()
			if !ok {
				break
			}
			buf.WriteString("    <rs:solution rdf:parseType=\"Resource\">\n")
			fmt.Fprintf(&buf, "      <rs:index rdf:datatype=%q>%d</rs:index>\n",
				XSDNamespace+"integer", index)
			for i, term := range row {
				if term == nil || i >= len(names) {
					continue
				}
				buf.WriteString("      <rs:binding rdf:parseType=\"Resource\">\n")
				fmt.Fprintf(&buf, "        <rs:variable>%s</rs:variable>\n", xmlEscape(names[i]))
				writeRDFXMLValue(&buf, term)
				buf.WriteString("      </rs:binding>\n")
			}
			buf.WriteString("    </rs:solution>\n")
		}
	}

	buf.WriteString("  </rs:ResultSet>\n</rdf:RDF>\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func writeRDFXMLValue(buf *bytes.Buffer, t *Term) {
	switch t.Kind {
	case TermURI:
		fmt.Fprintf(buf, "        <rs:value rdf:resource=%q/>\n", xmlEscape(t.Value))
	case TermBlank:
		fmt.Fprintf(buf, "        <rs:value rdf:nodeID=%q/>\n", xmlEscape(t.Value))
	default:
		switch {
		case t.Language != "":
			fmt.Fprintf(buf, "        <rs:value xml:lang=%q>%s</rs:value>\n",
				t.Language, xmlEscape(t.Value))
		case t.Datatype != "":
			fmt.Fprintf(buf, "        <rs:value rdf:datatype=%q>%s</rs:value>\n",
				xmlEscape(t.Datatype), xmlEscape(t.Value))
		default:
			fmt.Fprintf(buf, "        <rs:value>%s</rs:value>\n", xmlEscape(t.Value))
		}
	}
}
