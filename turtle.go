package rasqal

import (
	"bytes"
	"fmt"
	"io"
)

// Namespaces of the DAWG result-set vocabulary used by the Turtle and
// RDF/XML result formats.
const (
	rdfNS       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	resultSetNS = "http://www.w3.org/2001/sw/DataAccess/tests/result-set#"
)

func registerTurtleFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"turtle", "ttl"},
			Label: "RDF Result Set (Turtle)",
			URIs: []string{
				"http://www.w3.org/ns/formats/Turtle",
			},
			MimeTypes: []MimeType{
				{Type: "text/turtle", Q: 10},
				{Type: "application/turtle", Q: 5},
			},
		}
		fm.write = writeResultsTurtle
		fm.recognize = recognizeTurtle
		return nil
	})
	return err
}

// writeResultsTurtle serializes the result set as an RDF graph in the
// result-set vocabulary: one rs:ResultSet node with rs:resultVariable
// and indexed rs:solution blank nodes, or rs:boolean for ASK results.
func writeResultsTurtle(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "@prefix rdf: <%s> .\n", rdfNS)
	fmt.Fprintf(&buf, "@prefix rs: <%s> .\n\n", resultSetNS)
	buf.WriteString("[] rdf:type rs:ResultSet")

	if results.Kind() == ResultsBoolean {
		fmt.Fprintf(&buf, " ;\n   rs:boolean %t", results.Boolean())
	} else {
		names := results.Variables().Names()
		for _, name := range names {
			fmt.Fprintf(&buf, " ;\n   rs:resultVariable %q", name)
		}
		for index := 1; ; index++ {
			row, ok := results.NextRow()
			if !ok {
				break
			}
			fmt.Fprintf(&buf, " ;\n   rs:solution [\n      rs:index %d", index)
			for i, term := range row {
				if term == nil || i >= len(names) {
					continue
				}
				fmt.Fprintf(&buf, " ;\n      rs:binding [ rs:variable %q ; rs:value %s ]",
					names[i], term.N3())
			}
			buf.WriteString("\n   ]")
		}
	}
	buf.WriteString(" .\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func recognizeTurtle(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "ttl":
		score += 8
	case "n3":
		score += 3
	}
	if bytes.Contains(sn.content, []byte("@prefix")) {
		score += 4
	}
	if bytes.Contains(sn.content, []byte(resultSetNS)) {
		score += 4
	}
	return score
}
