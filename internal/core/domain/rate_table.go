package domain

import "github.com/shopspring/decimal"

// DateColumn is the name of the key column in the persisted table.
const DateColumn = "Date"

// RatePrecision is the number of decimal places derived rates and summary
// statistics are rounded to.
const RatePrecision int32 = 4

// Row is one dated entry of a RateTable. A column absent from Cells, or
// present with an invalid NullDecimal, means no rate was published for that
// date.
type Row struct {
	Date  string
	Cells map[string]decimal.NullDecimal
}

// RateTable is a wide table of exchange rates keyed by calendar date: one
// numeric column per currency pair plus derived cross-rate columns.
// Column order is significant and preserved through merges: pairs in the
// order they were first added, derived columns after them. Date uniqueness
// is guaranteed after Merge, not before.
type RateTable struct {
	columns []string
	rows    []Row
	index   map[string]int // date -> position in rows
}

// NewRateTable creates a table with one empty row per axis date.
func NewRateTable(dates []string) *RateTable {
	t := &RateTable{
		rows:  make([]Row, 0, len(dates)),
		index: make(map[string]int, len(dates)),
	}
	for _, d := range dates {
		t.index[d] = len(t.rows)
		t.rows = append(t.rows, Row{Date: d, Cells: make(map[string]decimal.NullDecimal)})
	}
	return t
}

// NewRateTableFromRows builds a table from already-populated rows, keeping
// the given column order. Used when reading a persisted table back.
func NewRateTableFromRows(columns []string, rows []Row) *RateTable {
	t := &RateTable{
		columns: append([]string(nil), columns...),
		rows:    rows,
		index:   make(map[string]int, len(rows)),
	}
	for i := range t.rows {
		if t.rows[i].Cells == nil {
			t.rows[i].Cells = make(map[string]decimal.NullDecimal)
		}
		t.index[t.rows[i].Date] = i
	}
	return t
}

// AddColumn left-joins a per-date rate series onto the table: dates present
// in byDate get a value, all other rows keep a missing cell. The column is
// registered even when no date matches, so the persisted schema stays stable
// across partial fetch cycles.
func (t *RateTable) AddColumn(name string, byDate map[string]decimal.Decimal) {
	t.registerColumn(name)
	for date, value := range byDate {
		if i, ok := t.index[date]; ok {
			t.rows[i].Cells[name] = decimal.NullDecimal{Decimal: value, Valid: true}
		}
	}
}

// ApplyCrossRate computes a derived column as the rounded ratio of two
// existing columns. Rows where either input is missing, or the denominator
// is zero, keep a missing cell instead of failing.
func (t *RateTable) ApplyCrossRate(cr CrossRate) {
	t.registerColumn(cr.Name)
	for i := range t.rows {
		num := t.rows[i].Cells[cr.Numerator]
		den := t.rows[i].Cells[cr.Denominator]
		if !num.Valid || !den.Valid || den.Decimal.IsZero() {
			continue
		}
		t.rows[i].Cells[cr.Name] = decimal.NullDecimal{
			Decimal: num.Decimal.Div(den.Decimal).Round(RatePrecision),
			Valid:   true,
		}
	}
}

// Merge concatenates the receiver's rows with the fresh table's rows and
// removes duplicate dates keeping the last occurrence, so freshly fetched
// rows win over stale ones. Surviving rows keep their concatenated order.
// Columns are the union: the receiver's order first, fresh-only appended.
func (t *RateTable) Merge(fresh *RateTable) *RateTable {
	if t == nil {
		return fresh
	}
	if fresh == nil {
		return t
	}

	columns := append([]string(nil), t.columns...)
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		seen[c] = true
	}
	for _, c := range fresh.columns {
		if !seen[c] {
			seen[c] = true
			columns = append(columns, c)
		}
	}

	concat := make([]Row, 0, len(t.rows)+len(fresh.rows))
	concat = append(concat, t.rows...)
	concat = append(concat, fresh.rows...)

	last := make(map[string]int, len(concat))
	for i, r := range concat {
		last[r.Date] = i
	}
	kept := make([]Row, 0, len(last))
	for i, r := range concat {
		if last[r.Date] == i {
			kept = append(kept, r)
		}
	}
	return NewRateTableFromRows(columns, kept)
}

// Columns returns the rate column names in table order, Date excluded.
func (t *RateTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether a rate column exists in the table.
func (t *RateTable) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the column's values in row order, missing cells included
// as invalid NullDecimals. The second result is false for unknown columns.
func (t *RateTable) Column(name string) ([]decimal.NullDecimal, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	values := make([]decimal.NullDecimal, len(t.rows))
	for i := range t.rows {
		values[i] = t.rows[i].Cells[name]
	}
	return values, true
}

// Dates returns the date of every row in row order.
func (t *RateTable) Dates() []string {
	dates := make([]string, len(t.rows))
	for i := range t.rows {
		dates[i] = t.rows[i].Date
	}
	return dates
}

// Rows exposes the table rows in persisted order.
func (t *RateTable) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *RateTable) Len() int {
	return len(t.rows)
}

func (t *RateTable) registerColumn(name string) {
	if !t.HasColumn(name) {
		t.columns = append(t.columns, name)
	}
}
