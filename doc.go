// Package rasqal reads and writes SPARQL query result sets in multiple
// on-the-wire syntaxes without callers knowing which syntaxes exist.
//
// A [World] owns an ordered registry of result formats built once by
// [NewWorld]. Formats are found by explicit criteria or by sniffing
// content, and are used through per-operation [Formatter] instances.
//
// # Formats
//
// The built-in formats, in registration (priority) order:
//
//   - xml — SPARQL Query Results XML (read, write)
//   - json — SPARQL Query Results JSON (read, write)
//   - table — text table for terminals (write)
//   - csv / tsv — SPARQL 1.1 delimited values (read, write)
//   - html — HTML table (write)
//   - turtle — result-set vocabulary graph in Turtle (write)
//   - rdfxml — result-set vocabulary graph in RDF/XML (write)
//   - yaml — the JSON results document shape in YAML (read, write)
//
// # Selection
//
// [World.NewFormatter] resolves a format from a name, MIME type, and/or
// URI; name beats URI beats MIME type, and with no criteria the first
// registered format is the default. [World.HasFormat] answers the same
// question without constructing anything.
//
// # Sniffing
//
// [World.GuessFormatName] identifies a format from partial signals: a
// syntax URI, a MIME type with per-format quality weights, a content
// sample (capped at 1 KiB), and a filename whose suffix hints at the
// syntax. An exact MIME match at quality 10 or an exact URI match is
// authoritative; otherwise the highest-scoring format wins, ties going
// to the earlier registration. [World.NewFormatterForContent] turns the
// guess directly into a formatter.
//
// # Reading and writing
//
//	f, err := world.NewFormatter("json", "", "")
//	defer f.Close()
//	err = f.Write(os.Stdout, results, "")
//
// [Formatter.Write] drains the result set: afterwards it is exhausted.
// [Formatter.Read] pulls decoded rows into a result set in production
// order. A formatter serves one operation; concurrent operations need
// distinct formatters.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNotRegistered] — no format matches the criteria or content
//   - [ErrCapability] — the format cannot read (or write) results
//   - [ErrBadRegistration] — a format registered without names or label
//   - [ErrNotBindings] — a reader was pointed at a boolean (ASK) document
package rasqal
