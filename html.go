package rasqal

import (
	"bytes"
	"fmt"
	"html"
	"io"
)

func registerHTMLFormat(w *World) error {
	_, err := w.registerFormat(func(fm *Format) error {
		fm.desc = FormatDescription{
			Names: []string{"html"},
			Label: "HTML Table",
			MimeTypes: []MimeType{
				{Type: "text/html", Q: 2},
				{Type: "application/xhtml+xml", Q: 2},
			},
		}
		fm.write = writeResultsHTML
		fm.recognize = recognizeHTML
		return nil
	})
	return err
}

func writeResultsHTML(f *Formatter, w io.Writer, results *Results, baseURI string) error {
	if results.Kind() == ResultsBoolean {
		_, err := fmt.Fprintf(w, "<p>%t</p>\n", results.Boolean())
		return err
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for _, name := range results.Variables().Names() {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>\n  <tbody>"); err != nil {
		return err
	}

	for {
		row, ok := results.NextRow()
		if !ok {
			break
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, term := range row {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(term.N3())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "  </tbody>\n</table>")
	return err
}

func recognizeHTML(fm *Format, sn *sniffInput) int {
	score := 0
	switch sn.suffix {
	case "html", "htm":
		score += 7
	}
	if bytes.Contains(sn.content, []byte("<table")) {
		score += 3
	}
	return score
}
