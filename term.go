package rasqal

import (
	"fmt"
	"strings"
)

// TermKind identifies the kind of RDF term held in a binding.
type TermKind int

const (
	TermUnknown TermKind = iota
	TermURI
	TermLiteral
	TermBlank
)

// Term is one RDF term: a URI, a literal (optionally typed or
// language-tagged), or a blank node.
type Term struct {
	Kind TermKind
	// Value is the URI string, the literal lexical form, or the blank
	// node label depending on Kind.
	Value string
	// Datatype is the datatype URI of a typed literal, "" otherwise.
	Datatype string
	// Language is the language tag of a plain literal, "" otherwise.
	Language string
}

// URITerm returns a URI term.
func URITerm(uri string) *Term { return &Term{Kind: TermURI, Value: uri} }

// LiteralTerm returns a plain literal term.
func LiteralTerm(lexical string) *Term { return &Term{Kind: TermLiteral, Value: lexical} }

// TypedLiteralTerm returns a literal term with a datatype URI.
func TypedLiteralTerm(lexical, datatype string) *Term {
	return &Term{Kind: TermLiteral, Value: lexical, Datatype: datatype}
}

// LangLiteralTerm returns a literal term with a language tag.
func LangLiteralTerm(lexical, language string) *Term {
	return &Term{Kind: TermLiteral, Value: lexical, Language: language}
}

// BlankTerm returns a blank node term with the given label.
func BlankTerm(label string) *Term { return &Term{Kind: TermBlank, Value: label} }

// Equal reports whether two terms are identical in kind and all fields.
// Either side may be nil (an unbound value).
func (t *Term) Equal(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return *t == *o
}

// XSDKind returns the XSD datatype kind of a typed literal, or XSDNone
// for URIs, blank nodes, and plain literals.
func (t *Term) XSDKind() XSDKind {
	if t == nil || t.Kind != TermLiteral || t.Datatype == "" {
		return XSDNone
	}
	return XSDKindForURI(t.Datatype)
}

// Valid reports whether the term's lexical form is acceptable for its
// datatype. Terms without a recognized XSD datatype are always valid.
func (t *Term) Valid() bool {
	return XSDCheck(t.XSDKind(), t.Value)
}

// String returns the term's display form: the raw URI, lexical value, or
// blank label. This is the shape CSV results and table cells use.
func (t *Term) String() string {
	if t == nil {
		return ""
	}
	return t.Value
}

// N3 returns the term in Turtle/N-Triples syntax. Known numeric and
// boolean XSD literals with valid lexical forms use the bare Turtle
// shorthand; everything else is fully quoted.
func (t *Term) N3() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TermURI:
		return "<" + t.Value + ">"
	case TermBlank:
		return "_:" + t.Value
	}
	switch kind := t.XSDKind(); kind {
	case XSDInteger, XSDDecimal, XSDDouble, XSDBoolean:
		if XSDCheck(kind, t.Value) {
			return t.Value
		}
	}
	s := `"` + escapeN3(t.Value) + `"`
	if t.Language != "" {
		return s + "@" + t.Language
	}
	if t.Datatype != "" {
		return s + "^^<" + t.Datatype + ">"
	}
	return s
}

var n3Escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeN3(s string) string { return n3Escaper.Replace(s) }

// ParseTermN3 parses a term in the N-Triples-style syntax produced by
// [Term.N3]: <uri>, _:label, quoted literals with optional @lang or
// ^^<datatype>, and bare boolean/integer/decimal/double shorthands.
// An empty string parses to nil (an unbound value).
func ParseTermN3(s string) (*Term, error) {
	if s == "" {
		return nil, nil
	}
	switch {
	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return URITerm(s[1 : len(s)-1]), nil
	case strings.HasPrefix(s, "_:"):
		return BlankTerm(s[2:]), nil
	case strings.HasPrefix(s, `"`):
		return parseQuotedLiteral(s)
	}
	for _, kind := range [...]XSDKind{XSDBoolean, XSDInteger, XSDDecimal, XSDDouble} {
		if XSDCheck(kind, s) {
			return TypedLiteralTerm(s, XSDDatatypeURI(kind)), nil
		}
	}
	return nil, fmt.Errorf("cannot parse term %q", s)
}

func parseQuotedLiteral(s string) (*Term, error) {
	var b strings.Builder
	i := 1
	for ; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			break
		}
		if c == '\\' {
			i++
			if i >= len(s) {
				return nil, fmt.Errorf("unterminated escape in %q", s)
			}
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(s[i])
			default:
				return nil, fmt.Errorf("bad escape \\%c in %q", s[i], s)
			}
			continue
		}
		b.WriteByte(c)
	}
	if i >= len(s) {
		return nil, fmt.Errorf("unterminated literal %q", s)
	}
	rest := s[i+1:]
	switch {
	case rest == "":
		return LiteralTerm(b.String()), nil
	case strings.HasPrefix(rest, "@"):
		return LangLiteralTerm(b.String(), rest[1:]), nil
	case strings.HasPrefix(rest, "^^<") && strings.HasSuffix(rest, ">"):
		return TypedLiteralTerm(b.String(), rest[3:len(rest)-1]), nil
	}
	return nil, fmt.Errorf("trailing garbage after literal: %q", rest)
}

// Row holds one query solution: one term per variable in the variable
// table's order. A nil entry is an unbound variable.
type Row []*Term

// VariableTable is the ordered set of variable names shared by the rows
// of one result set.
type VariableTable struct {
	names []string
	index map[string]int
}

// NewVariableTable returns an empty variable table.
func NewVariableTable(names ...string) *VariableTable {
	vt := &VariableTable{index: make(map[string]int)}
	for _, name := range names {
		vt.Add(name)
	}
	return vt
}

// Add appends a variable if not already present and returns its column
// offset.
func (vt *VariableTable) Add(name string) int {
	if i, ok := vt.index[name]; ok {
		return i
	}
	i := len(vt.names)
	vt.names = append(vt.names, name)
	vt.index[name] = i
	return i
}

// Offset returns the column offset of a variable.
func (vt *VariableTable) Offset(name string) (int, bool) {
	i, ok := vt.index[name]
	return i, ok
}

// Names returns the variable names in column order.
func (vt *VariableTable) Names() []string {
	out := make([]string, len(vt.names))
	copy(out, vt.names)
	return out
}

// Size returns the number of variables.
func (vt *VariableTable) Size() int { return len(vt.names) }
