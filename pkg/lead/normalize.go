package lead

import (
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/utils"
)

// RawRow is one spreadsheet row keyed by its original headers, in
// worksheet column order.
type RawRow struct {
	Headers []string
	Values  []string
}

// NormalizeRow assembles a canonical record from a raw row. Headers with no
// alias mapping are dropped; when several raw headers resolve to the same
// canonical field the last one in column order wins. Returns nil when no
// canonical field ends up with a usable value, which is how all-blank and
// all-unmapped rows are discarded.
func NormalizeRow(row RawRow, hint CoerceHint) *Record {
	rec := &Record{Identity: NewLocalIdentity()}

	for i, header := range row.Headers {
		field, ok := ResolveHeader(header)
		if !ok {
			continue
		}
		value := ""
		if i < len(row.Values) {
			value = row.Values[i]
		}
		rec.Set(field, Coerce(field, value, hint))
	}

	if isAllBlank(rec) {
		return nil
	}
	return rec
}

func isAllBlank(rec *Record) bool {
	for _, col := range Columns {
		if !utils.IsBlank(rec.Get(col)) {
			return false
		}
	}
	return true
}
