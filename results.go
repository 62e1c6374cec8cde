package rasqal

// ResultsKind distinguishes variable-binding (SELECT) results from
// boolean (ASK) results.
type ResultsKind int

const (
	ResultsBindings ResultsKind = iota
	ResultsBoolean
)

// Results is a mutable query result set. Bindings results hold a
// variable table and an ordered sequence of rows; boolean results hold a
// single truth value.
//
// Rows are consumed in order: writing a result set through a formatter
// drains it, so after a successful write NextRow yields nothing and
// Finished reports true.
type Results struct {
	kind    ResultsKind
	vars    *VariableTable
	rows    []Row
	next    int
	boolean bool
}

// NewBindingsResults returns an empty bindings result set over the given
// variable table. A nil table gets a fresh empty one.
func NewBindingsResults(vars *VariableTable) *Results {
	if vars == nil {
		vars = NewVariableTable()
	}
	return &Results{kind: ResultsBindings, vars: vars}
}

// NewBooleanResults returns an ASK result carrying value.
func NewBooleanResults(value bool) *Results {
	return &Results{kind: ResultsBoolean, vars: NewVariableTable(), boolean: value}
}

// Kind returns whether this is a bindings or boolean result set.
func (r *Results) Kind() ResultsKind { return r.kind }

// Variables returns the result set's variable table.
func (r *Results) Variables() *VariableTable { return r.vars }

// Boolean returns the value of an ASK result.
func (r *Results) Boolean() bool { return r.boolean }

// AddRow appends a row. Short rows are padded with unbound values to the
// current variable count.
func (r *Results) AddRow(row Row) {
	for len(row) < r.vars.Size() {
		row = append(row, nil)
	}
	r.rows = append(r.rows, row)
}

// NextRow consumes and returns the next unread row. It reports false
// once every row has been read.
func (r *Results) NextRow() (Row, bool) {
	if r.next >= len(r.rows) {
		return nil, false
	}
	row := r.rows[r.next]
	r.next++
	return row, true
}

// Finished reports whether every row has been consumed.
func (r *Results) Finished() bool { return r.next >= len(r.rows) }

// RowCount returns the number of rows not yet consumed.
func (r *Results) RowCount() int { return len(r.rows) - r.next }
