package lead

import "testing"

func TestCoerceDateSerial(t *testing.T) {
	// 45486 is the spreadsheet serial for 2024-07-13.
	got := Coerce(FieldRegDate, "45486", CoerceHint{ExcelDates: true})
	if got != "7/13/2024" {
		t.Fatalf("serial 45486 = %q, want 7/13/2024", got)
	}
}

func TestCoerceDateStrings(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"7/13/2024", "7/13/2024"},  // already canonical, passes through
		{"2024-07-13", "7/13/2024"}, // ISO input
		{"02-Jan-2024", "1/2/2024"},
		{"not a date", "not a date"}, // degrades to the trimmed original
		{"  padded  ", "padded"},
	}
	for _, c := range cases {
		if got := Coerce(FieldAssDate, c.raw, CoerceHint{}); got != c.want {
			t.Errorf("Coerce(AssDate, %q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCoerceDateSerialWithoutHint(t *testing.T) {
	// Without the Excel hint a bare number in a date field is not a
	// serial; it degrades to the original string.
	if got := Coerce(FieldRegDate, "45486", CoerceHint{}); got != "45486" {
		t.Fatalf("unhinted serial = %q, want 45486", got)
	}
}

func TestCoerceNumericFields(t *testing.T) {
	cases := []struct {
		field string
		raw   string
		want  string
	}{
		{FieldGrossWeight, "7,000", "7,000.00"},
		{FieldFobValueUSD, "33110", "33,110.00"},
		{FieldFobValueBirr, "1887270.5", "1,887,270.50"},
		{FieldNetWeight, "250", "250.00"},
		{FieldGrossWeight, "n/a", "n/a"}, // unparseable, falls back
	}
	for _, c := range cases {
		if got := Coerce(c.field, c.raw, CoerceHint{}); got != c.want {
			t.Errorf("Coerce(%s, %q) = %q, want %q", c.field, c.raw, got, c.want)
		}
	}
}

func TestCoerceQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"14000", "14,000"}, // integers render with no decimals
		{"14,000", "14,000"},
		{"2.5", "2.5"}, // non-integers keep up to two
		{"2.50", "2.5"},
		{"0.333", "0.33"},
		{"a dozen", "a dozen"},
	}
	for _, c := range cases {
		if got := Coerce(FieldQty, c.raw, CoerceHint{}); got != c.want {
			t.Errorf("Coerce(Qty, %q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCoercePassThroughFields(t *testing.T) {
	if got := Coerce(FieldProduct, "  Washed Arabica Coffee  ", CoerceHint{}); got != "Washed Arabica Coffee" {
		t.Fatalf("pass-through = %q", got)
	}
	if got := Coerce(FieldEmail, "", CoerceHint{}); got != "" {
		t.Fatalf("empty cell = %q, want empty", got)
	}
}
