package rasqal

import (
	"strconv"
	"time"
)

// XSDNamespace is the XML Schema datatypes namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// XSDKind classifies the XSD datatypes the engine understands natively.
// XSDIntegerSubtype covers the twelve types derived from xsd:integer
// (xsd:long, xsd:int, xsd:short, ...) which all promote to xsd:integer.
type XSDKind int

const (
	XSDNone XSDKind = iota
	XSDString
	XSDBoolean
	XSDInteger
	XSDFloat
	XSDDouble
	XSDDecimal
	XSDDateTime
	XSDIntegerSubtype
)

var xsdNames = map[XSDKind]string{
	XSDString:   "string",
	XSDBoolean:  "boolean",
	XSDInteger:  "integer",
	XSDFloat:    "float",
	XSDDouble:   "double",
	XSDDecimal:  "decimal",
	XSDDateTime: "dateTime",
}

// Types derived from xsd:integer, per the XML Schema built-in hierarchy.
var xsdIntegerDerivedNames = []string{
	"nonPositiveInteger", "negativeInteger",
	"long", "int", "short", "byte",
	"nonNegativeInteger", "unsignedLong", "positiveInteger",
	"unsignedInt", "unsignedShort", "unsignedByte",
}

// XSDDatatypeLabel returns the local name of a datatype kind, or "".
func XSDDatatypeLabel(kind XSDKind) string { return xsdNames[kind] }

// XSDDatatypeURI returns the full datatype URI for a kind, or "" for
// kinds without a single URI (XSDNone, XSDIntegerSubtype).
func XSDDatatypeURI(kind XSDKind) string {
	name, ok := xsdNames[kind]
	if !ok {
		return ""
	}
	return XSDNamespace + name
}

// XSDKindForURI maps a datatype URI to its native kind. Any of the
// integer-derived type URIs map to XSDIntegerSubtype. Unrecognized URIs
// map to XSDNone.
func XSDKindForURI(uri string) XSDKind {
	if len(uri) <= len(XSDNamespace) || uri[:len(XSDNamespace)] != XSDNamespace {
		return XSDNone
	}
	local := uri[len(XSDNamespace):]
	for kind, name := range xsdNames {
		if name == local {
			return kind
		}
	}
	for _, name := range xsdIntegerDerivedNames {
		if name == local {
			return XSDIntegerSubtype
		}
	}
	return XSDNone
}

// IsXSDDatatypeURI reports whether uri names a natively understood XSD
// datatype.
func IsXSDDatatypeURI(uri string) bool { return XSDKindForURI(uri) != XSDNone }

// XSDIsNumeric reports whether a kind takes part in numeric promotion.
// Boolean counts as numeric for SPARQL ordering purposes.
func XSDIsNumeric(kind XSDKind) bool {
	switch kind {
	case XSDBoolean, XSDInteger, XSDFloat, XSDDouble, XSDDecimal, XSDIntegerSubtype:
		return true
	}
	return false
}

// XSDParentType returns the type a kind promotes to in arithmetic:
// boolean -> integer -> float -> double -> decimal, integer subtypes
// -> integer. Other kinds have no parent.
func XSDParentType(kind XSDKind) XSDKind {
	switch kind {
	case XSDIntegerSubtype:
		return XSDInteger
	case XSDBoolean:
		return XSDInteger
	case XSDInteger:
		return XSDFloat
	case XSDFloat:
		return XSDDouble
	case XSDDouble:
		return XSDDecimal
	}
	return XSDNone
}

// XSDCheck reports whether lexical is a valid form for the kind. Kinds
// with no check function (string, dateless kinds, XSDNone) accept any
// lexical form.
func XSDCheck(kind XSDKind, lexical string) bool {
	switch kind {
	case XSDBoolean:
		return checkBoolean(lexical)
	case XSDInteger, XSDIntegerSubtype:
		return checkInteger(lexical)
	case XSDFloat, XSDDouble:
		return checkFloatingPoint(lexical)
	case XSDDecimal:
		return checkDecimal(lexical)
	case XSDDateTime:
		return checkDateTime(lexical)
	}
	return true
}

func checkBoolean(s string) bool {
	switch s {
	case "true", "TRUE", "1", "false", "FALSE", "0":
		return true
	}
	return false
}

func checkInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func checkFloatingPoint(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// checkDecimal accepts an optional sign, digits, and an optional
// fractional part; at least one digit must be present.
func checkDecimal(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits := i
	if i == len(s) {
		return digits > 0
	}
	if s[i] != '.' {
		return false
	}
	i++
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	return i == len(s) && digits > 0
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
}

func checkDateTime(s string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
