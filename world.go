package rasqal

import (
	"errors"
	"fmt"
)

// World owns one independent format registry. Several worlds may coexist
// in a process. The registry is fixed after NewWorld returns and is safe
// for concurrent lookups; construction and Close must not race with use.
type World struct {
	formats []*Format
}

// The built-in registration list, in priority order: the first entry is
// the default format when a lookup gives no criteria.
var builtinFormats = []struct {
	name string
	fn   func(*World) error
}{
	{"xml", registerXMLFormat},
	{"json", registerJSONFormat},
	{"table", registerTableFormat},
	{"sv", registerSVFormat},
	{"html", registerHTMLFormat},
	{"turtle", registerTurtleFormat},
	{"rdf", registerRDFFormat},
	{"yaml", registerYAMLFormat},
}

// NewWorld returns a world with every built-in result format registered.
// Registration failures do not abort the remaining formats: the returned
// world holds whichever formats registered cleanly, and the joined
// failures come back as the error.
func NewWorld() (*World, error) {
	w := &World{}
	var errs []error
	for _, reg := range builtinFormats {
		if err := reg.fn(w); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", reg.name, err))
		}
	}
	return w, errors.Join(errs...)
}

// Close releases the registry. Idempotent; lookups after Close find
// nothing.
func (w *World) Close() {
	w.formats = nil
}

// FormatCount returns the number of registered formats.
func (w *World) FormatCount() int { return len(w.formats) }

// FormatDescription returns the description of the i'th registered
// format in registration order, reporting false when i is out of range.
func (w *World) FormatDescription(i int) (FormatDescription, bool) {
	if i < 0 || i >= len(w.formats) {
		return FormatDescription{}, false
	}
	return w.formats[i].desc, true
}
