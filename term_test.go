package rasqal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldebaran/rasqal"
)

func TestTermN3(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		term *rasqal.Term
		want string
	}{
		{"uri", rasqal.URITerm("http://example.org/a"), "<http://example.org/a>"},
		{"plain literal", rasqal.LiteralTerm("hello"), `"hello"`},
		{"lang literal", rasqal.LangLiteralTerm("chat", "en"), `"chat"@en`},
		{"blank", rasqal.BlankTerm("b0"), "_:b0"},
		{"integer shorthand", rasqal.TypedLiteralTerm("42", rasqal.XSDNamespace+"integer"), "42"},
		{"decimal shorthand", rasqal.TypedLiteralTerm("4.5", rasqal.XSDNamespace+"decimal"), "4.5"},
		{"boolean shorthand", rasqal.TypedLiteralTerm("true", rasqal.XSDNamespace+"boolean"), "true"},
		{
			"invalid integer stays quoted",
			rasqal.TypedLiteralTerm("forty-two", rasqal.XSDNamespace+"integer"),
			`"forty-two"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
		{
			"integer subtype stays quoted",
			rasqal.TypedLiteralTerm("42", rasqal.XSDNamespace+"long"),
			`"42"^^<http://www.w3.org/2001/XMLSchema#long>`,
		},
		{
			"other datatype",
			rasqal.TypedLiteralTerm("2024-01-02T03:04:05Z", rasqal.XSDNamespace+"dateTime"),
			`"2024-01-02T03:04:05Z"^^<http://www.w3.org/2001/XMLSchema#dateTime>`,
		},
		{"escapes", rasqal.LiteralTerm("a\"b\\c\nd\te"), `"a\"b\\c\nd\te"`},
		{"unbound", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.term.N3())
		})
	}
}

func TestParseTermN3RoundTrip(t *testing.T) {
	t.Parallel()
	terms := []*rasqal.Term{
		rasqal.URITerm("http://example.org/a"),
		rasqal.LiteralTerm("hello"),
		rasqal.LiteralTerm("a\"b\\c\nd"),
		rasqal.LangLiteralTerm("chat", "en"),
		rasqal.TypedLiteralTerm("42", rasqal.XSDNamespace+"integer"),
		rasqal.TypedLiteralTerm("4.5", rasqal.XSDNamespace+"decimal"),
		rasqal.TypedLiteralTerm("true", rasqal.XSDNamespace+"boolean"),
		rasqal.TypedLiteralTerm("x", "http://example.org/dt"),
		rasqal.BlankTerm("b0"),
		nil,
	}
	for _, term := range terms {
		got, err := rasqal.ParseTermN3(term.N3())
		require.NoError(t, err, "N3 form %q", term.N3())
		assert.True(t, term.Equal(got), "want %+v got %+v", term, got)
	}
}

func TestParseTermN3Bare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		datatype string
	}{
		{"true", rasqal.XSDNamespace + "boolean"},
		{"false", rasqal.XSDNamespace + "boolean"},
		{"42", rasqal.XSDNamespace + "integer"},
		{"-7", rasqal.XSDNamespace + "integer"},
		{"4.5", rasqal.XSDNamespace + "decimal"},
		{"1e3", rasqal.XSDNamespace + "double"},
	}
	for _, tt := range tests {
		got, err := rasqal.ParseTermN3(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.NotNil(t, got)
		assert.Equal(t, rasqal.TermLiteral, got.Kind)
		assert.Equal(t, tt.input, got.Value)
		assert.Equal(t, tt.datatype, got.Datatype, "input %q", tt.input)
	}
}

func TestParseTermN3Errors(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"not a term",
		`"unterminated`,
		`"bad escape \q"`,
		`"trailing"garbage`,
		`"dt"^^missing-brackets`,
	}
	for _, input := range inputs {
		_, err := rasqal.ParseTermN3(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTermValid(t *testing.T) {
	t.Parallel()
	assert.True(t, rasqal.TypedLiteralTerm("42", rasqal.XSDNamespace+"integer").Valid())
	assert.False(t, rasqal.TypedLiteralTerm("forty-two", rasqal.XSDNamespace+"integer").Valid())
	assert.True(t, rasqal.LiteralTerm("anything at all").Valid())
	assert.True(t, rasqal.URITerm("http://example.org/").Valid())
}

func TestXSDCheck(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind    rasqal.XSDKind
		lexical string
		want    bool
	}{
		{rasqal.XSDBoolean, "true", true},
		{rasqal.XSDBoolean, "TRUE", true},
		{rasqal.XSDBoolean, "1", true},
		{rasqal.XSDBoolean, "yes", false},
		{rasqal.XSDInteger, "007", true},
		{rasqal.XSDInteger, "-13", true},
		{rasqal.XSDInteger, "1e3", false},
		{rasqal.XSDInteger, "", false},
		{rasqal.XSDDouble, "1e3", true},
		{rasqal.XSDDouble, "-2.5E-4", true},
		{rasqal.XSDDouble, "one", false},
		{rasqal.XSDDecimal, "3.14", true},
		{rasqal.XSDDecimal, "+.5", true},
		{rasqal.XSDDecimal, "7.", true},
		{rasqal.XSDDecimal, ".", false},
		{rasqal.XSDDecimal, "", false},
		{rasqal.XSDDecimal, "1e3", false},
		{rasqal.XSDDateTime, "2024-01-02T03:04:05Z", true},
		{rasqal.XSDDateTime, "2024-01-02T03:04:05.5+01:00", true},
		{rasqal.XSDDateTime, "2024-01-02", false},
		{rasqal.XSDString, "anything", true},
		{rasqal.XSDNone, "anything", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rasqal.XSDCheck(tt.kind, tt.lexical),
			"kind %v lexical %q", tt.kind, tt.lexical)
	}
}

func TestXSDKindForURI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		uri  string
		want rasqal.XSDKind
	}{
		{rasqal.XSDNamespace + "integer", rasqal.XSDInteger},
		{rasqal.XSDNamespace + "boolean", rasqal.XSDBoolean},
		{rasqal.XSDNamespace + "dateTime", rasqal.XSDDateTime},
		{rasqal.XSDNamespace + "long", rasqal.XSDIntegerSubtype},
		{rasqal.XSDNamespace + "unsignedByte", rasqal.XSDIntegerSubtype},
		{rasqal.XSDNamespace + "positiveInteger", rasqal.XSDIntegerSubtype},
		{rasqal.XSDNamespace + "duration", rasqal.XSDNone},
		{"http://example.org/notxsd", rasqal.XSDNone},
		{"", rasqal.XSDNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rasqal.XSDKindForURI(tt.uri), "uri %q", tt.uri)
	}
	assert.True(t, rasqal.IsXSDDatatypeURI(rasqal.XSDNamespace+"decimal"))
	assert.False(t, rasqal.IsXSDDatatypeURI("http://example.org/notxsd"))
}

func TestXSDParentType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, rasqal.XSDInteger, rasqal.XSDParentType(rasqal.XSDBoolean))
	assert.Equal(t, rasqal.XSDInteger, rasqal.XSDParentType(rasqal.XSDIntegerSubtype))
	assert.Equal(t, rasqal.XSDFloat, rasqal.XSDParentType(rasqal.XSDInteger))
	assert.Equal(t, rasqal.XSDDouble, rasqal.XSDParentType(rasqal.XSDFloat))
	assert.Equal(t, rasqal.XSDDecimal, rasqal.XSDParentType(rasqal.XSDDouble))
	assert.Equal(t, rasqal.XSDNone, rasqal.XSDParentType(rasqal.XSDDecimal))
	assert.Equal(t, rasqal.XSDNone, rasqal.XSDParentType(rasqal.XSDString))
}

func TestXSDIsNumeric(t *testing.T) {
	t.Parallel()
	for _, kind := range []rasqal.XSDKind{
		rasqal.XSDBoolean, rasqal.XSDInteger, rasqal.XSDFloat,
		rasqal.XSDDouble, rasqal.XSDDecimal, rasqal.XSDIntegerSubtype,
	} {
		assert.True(t, rasqal.XSDIsNumeric(kind), "kind %v", kind)
	}
	assert.False(t, rasqal.XSDIsNumeric(rasqal.XSDString))
	assert.False(t, rasqal.XSDIsNumeric(rasqal.XSDDateTime))
	assert.False(t, rasqal.XSDIsNumeric(rasqal.XSDNone))
}

func TestVariableTable(t *testing.T) {
	t.Parallel()
	vt := rasqal.NewVariableTable("a", "b")
	assert.Equal(t, 2, vt.Size())
	assert.Equal(t, 0, vt.Add("a"))
	assert.Equal(t, 2, vt.Add("c"))
	assert.Equal(t, 3, vt.Size())

	i, ok := vt.Offset("b")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = vt.Offset("missing")
	assert.False(t, ok)

	names := vt.Names()
	assert.Equal(t, []string{"a", "b", "c"}, names)
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, vt.Names())
}
