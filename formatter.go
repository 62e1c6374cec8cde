package rasqal

import (
	"fmt"
	"io"
	"iter"
)

// RowSeq is a finite, single-use sequence of decoded result rows. A
// non-nil error ends the sequence; iteration must not be restarted.
// Cleanup owned by the producing format runs when iteration stops, even
// if the consumer breaks early.
type RowSeq = iter.Seq2[Row, error]

// Formatter is a live, single-use instance of one result format. A
// formatter serves one read or one write and is not safe for concurrent
// use; concurrent operations need distinct formatters.
type Formatter struct {
	world  *World
	format *Format
	// name is the name the formatter was requested under; formats with
	// several aliases (csv/tsv) use it to pick their variant.
	name string
	// state is per-use context owned by the format implementation.
	state  any
	closed bool
}

// NewFormatter creates a formatter for an identified format. A format
// can be found by name, MIME type, or URI, all optional; with several
// given, name wins over URI, which wins over MIME type. With none given
// the default (first registered) format is used.
func (w *World) NewFormatter(name, mimeType, uri string) (*Formatter, error) {
	fm := w.findFormat(name, uri, mimeType, 0)
	if fm == nil {
		return nil, fmt.Errorf("%w: name=%q mime=%q uri=%q", ErrNotRegistered, name, mimeType, uri)
	}
	f := &Formatter{world: w, format: fm, name: name}
	if fm.init != nil {
		if err := fm.init(f, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("init %s formatter: %w", fm.desc.Name(), err)
		}
	}
	return f, nil
}

// NewFormatterForContent creates a formatter for content identified by
// sniffing: [World.GuessFormatName] scores the URI, MIME type, content
// sample, and identifier, and the winning format's formatter is
// returned.
func (w *World) NewFormatterForContent(uri, mimeType string, content []byte, identifier string) (*Formatter, error) {
	name := w.GuessFormatName(uri, mimeType, content, identifier)
	if name == "" {
		return nil, fmt.Errorf("%w: content not recognized", ErrNotRegistered)
	}
	return w.NewFormatter(name, "", "")
}

// Description returns the bound format's metadata.
func (f *Formatter) Description() FormatDescription { return f.format.desc }

// Close releases the formatter, running the format's finish hook if it
// has one. Close is idempotent; any other use after Close fails.
func (f *Formatter) Close() {
	if f.closed {
		return
	}
	f.closed = true
	if f.format.finish != nil {
		f.format.finish(f)
	}
	f.state = nil
}

// Write serializes results to w. The bound format must be a writer.
// After a successful write the result set is drained: every row has been
// consumed and Finished reports true.
func (f *Formatter) Write(w io.Writer, results *Results, baseURI string) error {
	if f.closed {
		return ErrFormatterClosed
	}
	if f.format.write == nil {
		return fmt.Errorf("%w: %s cannot write results", ErrCapability, f.format.desc.Name())
	}
	return f.format.write(f, w, results, baseURI)
}

// Read decodes rows from r into results. The bound format must be a
// reader. Rows are appended in production order; variables discovered in
// the content are added to the result set's variable table. Boolean
// (ASK) documents are reported as ErrNotBindings.
func (f *Formatter) Read(r io.Reader, results *Results, baseURI string) error {
	if f.closed {
		return ErrFormatterClosed
	}
	if f.format.rows == nil {
		return fmt.Errorf("%w: %s cannot read results", ErrCapability, f.format.desc.Name())
	}
	seq, err := f.format.rows(f, results.Variables(), r, baseURI)
	if err != nil {
		return err
	}
	for row, err := range seq {
		if err != nil {
			return fmt.Errorf("reading %s results: %w", f.format.desc.Name(), err)
		}
		results.AddRow(row)
	}
	return nil
}
