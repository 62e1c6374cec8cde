package rasqal

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBadRegistration = errors.New("format registration missing required names or label")
	ErrNotRegistered   = errors.New("no matching result format")
	ErrCapability      = errors.New("format does not support operation")
	ErrNotBindings     = errors.New("content is not a bindings result")
	ErrFormatterClosed = errors.New("formatter already closed")
)

// FormatFlags records which directions a result format supports. The
// flags are derived from the behaviors a format registers and are never
// set by registration code.
type FormatFlags uint8

const (
	FormatFlagReader FormatFlags = 1 << iota
	FormatFlagWriter
)

// MimeType associates a MIME type string with a quality weight Q in
// 0..10 expressing confidence when the type is matched while sniffing
// content. Q of 10 is authoritative: a match selects the format without
// considering any other candidate.
type MimeType struct {
	Type string
	Q    int
}

// FormatDescription is the static metadata of one registered result
// format.
type FormatDescription struct {
	// Names holds the format's aliases; Names[0] is the canonical name.
	Names []string
	// Label is a required human-readable description.
	Label string
	// URIs are canonical identifying URIs for the syntax, if any.
	URIs []string
	// MimeTypes lists MIME associations with sniffing quality weights.
	MimeTypes []MimeType
	// Flags is derived at registration from the registered behaviors.
	Flags FormatFlags
}

// Name returns the canonical format name.
func (d FormatDescription) Name() string { return d.Names[0] }

// Format is one registered result-format implementation: a description
// plus optional behaviors. A behavior left nil means the capability is
// absent; a format may be a reader, a writer, both, or neither
// (sniff-only).
type Format struct {
	world *World
	desc  FormatDescription

	// init prepares a per-use formatter; name is the name the formatter
	// was requested under (possibly ""), letting one format serve
	// several named variants.
	init   func(f *Formatter, name string) error
	finish func(f *Formatter)

	// write serializes an entire result set, draining it.
	write func(f *Formatter, w io.Writer, results *Results, baseURI string) error
	// rows builds a pull iterator over decoded rows, registering
	// variables on vars as they are discovered.
	rows func(f *Formatter, vars *VariableTable, r io.Reader, baseURI string) (RowSeq, error)
	// recognize scores how strongly the sniffed signals resemble this
	// syntax.
	recognize func(fm *Format, sn *sniffInput) int
}

// Description returns a copy of the format's metadata.
func (fm *Format) Description() FormatDescription { return fm.desc }

// registerFunc populates a freshly allocated Format with its description
// and behaviors.
type registerFunc func(*Format) error

// registerFormat allocates a format, runs the registration function, and
// validates and appends the result. A failed registration leaves the
// registry untouched.
func (w *World) registerFormat(fn registerFunc) (*Format, error) {
	fm := &Format{world: w}
	if err := fn(fm); err != nil {
		return nil, fmt.Errorf("result format registration failed: %w", err)
	}
	if len(fm.desc.Names) == 0 || fm.desc.Names[0] == "" || fm.desc.Label == "" {
		return nil, fmt.Errorf("%w: names=%q", ErrBadRegistration, fm.desc.Names)
	}
	fm.desc.Flags = 0
	if fm.rows != nil {
		fm.desc.Flags |= FormatFlagReader
	}
	if fm.write != nil {
		fm.desc.Flags |= FormatFlagWriter
	}
	w.formats = append(w.formats, fm)
	return fm, nil
}

// flagsMatch is the single place the capability-matching policy lives.
// The policy is strict equality: requesting FormatFlagReader alone
// excludes formats that can also write. Zero required flags accept any
// format.
func flagsMatch(required, have FormatFlags) bool {
	return required == 0 || required == have
}

// findFormat resolves a format from explicit criteria. With neither name
// nor uri the first flag-matching format (registration order) is the
// default. Otherwise the criteria are tried in strict priority order
// over the whole registry: a name match anywhere beats a URI match
// anywhere, which beats a MIME match anywhere. Matches are exact string
// comparisons; MIME quality weights play no part here.
func (w *World) findFormat(name, uri, mimeType string, flags FormatFlags) *Format {
	if name == "" && uri == "" {
		for _, fm := range w.formats {
			if flagsMatch(flags, fm.desc.Flags) {
				return fm
			}
		}
		return nil
	}
	if name != "" {
		for _, fm := range w.formats {
			if flagsMatch(flags, fm.desc.Flags) && slices.Contains(fm.desc.Names, name) {
				return fm
			}
		}
	}
	if uri != "" {
		for _, fm := range w.formats {
			if flagsMatch(flags, fm.desc.Flags) && slices.Contains(fm.desc.URIs, uri) {
				return fm
			}
		}
	}
	if mimeType != "" {
		for _, fm := range w.formats {
			if !flagsMatch(flags, fm.desc.Flags) {
				continue
			}
			for _, mt := range fm.desc.MimeTypes {
				if mt.Type == mimeType {
					return fm
				}
			}
		}
	}
	return nil
}

// HasFormat reports whether a format matching the given criteria is
// registered. All of name, uri, and mimeType are optional; flags of zero
// accept any capability.
func (w *World) HasFormat(name, uri, mimeType string, flags FormatFlags) bool {
	return w.findFormat(name, uri, mimeType, flags) != nil
}
