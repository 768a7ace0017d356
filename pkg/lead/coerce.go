package lead

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CoerceHint carries source-format information the cell value alone cannot.
type CoerceHint struct {
	// ExcelDates means numeric values in date fields are spreadsheet
	// date serials rather than literal numbers.
	ExcelDates bool
}

var numPrinter = message.NewPrinter(language.English)

// Field classes for coercion. Everything not listed is a pass-through.
var (
	dateFields = map[string]bool{
		FieldRegDate: true,
		FieldAssDate: true,
	}
	numericFields = map[string]bool{
		FieldGrossWeight:  true,
		FieldNetWeight:    true,
		FieldFobValueUSD:  true,
		FieldFobValueBirr: true,
	}
)

// Accepted date layouts, tried in order. The first is also the canonical
// output form.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
	"02-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"2 January 2006",
}

// Coerce converts a raw cell value into the canonical string representation
// for the given field. It never fails: input that cannot be interpreted
// degrades to the trimmed original so a single bad cell cannot sink a row.
func Coerce(field, raw string, hint CoerceHint) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	switch {
	case dateFields[field]:
		return coerceDate(trimmed, hint)
	case numericFields[field]:
		return coerceNumber(trimmed)
	case field == FieldQty:
		return coerceQuantity(trimmed)
	default:
		return trimmed
	}
}

func coerceDate(raw string, hint CoerceHint) string {
	if hint.ExcelDates {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return formatDate(t)
			}
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return formatDate(t)
		}
	}
	return raw
}

// formatDate renders M/D/YYYY with no zero-padding.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// coerceNumber renders a currency or weight value with two decimal places
// and locale thousands separators.
func coerceNumber(raw string) string {
	f, ok := parseFloat(raw)
	if !ok {
		return raw
	}
	return numPrinter.Sprintf("%.2f", f)
}

// coerceQuantity renders integers bare and keeps up to two decimals for
// anything else.
func coerceQuantity(raw string) string {
	f, ok := parseFloat(raw)
	if !ok {
		return raw
	}
	s := numPrinter.Sprintf("%.2f", f)
	if dot := strings.LastIndexByte(s, '.'); dot >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func parseFloat(raw string) (float64, bool) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(raw)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
