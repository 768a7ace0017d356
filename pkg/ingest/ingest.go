// Package ingest drives a spreadsheet file through the normalization chain
// and hands the surviving batch to the reconciliation store.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/utils"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

// ErrNothingToImport is returned when no row survives normalization. The
// remote service is never contacted in that case.
var ErrNothingToImport = errors.New("nothing to import: no row held any usable data")

// BatchStore is the slice of the reconciliation store the orchestrator
// needs.
type BatchStore interface {
	ImportBatch(ctx context.Context, records []lead.Record, replaceExisting bool) error
}

// Result summarizes a successful import. DominantScope is a display hint
// telling the caller which category view the new data predominantly
// belongs to; it is not a stored property.
type Result struct {
	Imported      int
	Dropped       int
	DominantScope lead.Scope
}

// Importer is the top-level entry point of the ingestion pipeline.
type Importer struct {
	Store BatchStore
}

// ImportFile reads the spreadsheet at path (first worksheet only, first
// row as headers), normalizes every data row, and submits the batch as a
// single replace-or-merge call. Parse failures are reported before any
// network traffic.
func (imp *Importer) ImportFile(ctx context.Context, path string, replaceExisting bool) (Result, error) {
	headers, rows, hint, err := readTable(path)
	if err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%s holds no data rows", filepath.Base(path))
	}

	var batch []lead.Record
	dropped := 0
	for _, values := range rows {
		rec := lead.NormalizeRow(lead.RawRow{Headers: headers, Values: values}, hint)
		if rec == nil {
			dropped++
			continue
		}
		batch = append(batch, *rec)
	}
	utils.Log.Debugf("normalized %d rows, dropped %d blank rows", len(batch), dropped)

	if len(batch) == 0 {
		return Result{Dropped: dropped}, ErrNothingToImport
	}

	if err := imp.Store.ImportBatch(ctx, batch, replaceExisting); err != nil {
		return Result{}, err
	}

	return Result{
		Imported:      len(batch),
		Dropped:       dropped,
		DominantScope: lead.DominantScope(batch),
	}, nil
}

// readTable parses the file into a header row plus data rows. Excel files
// are read with raw cell values so date cells arrive as serials, which the
// coercion hint tells the engine to expect.
func readTable(path string) (headers []string, rows [][]string, hint lead.CoerceHint, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		headers, rows, err = readCSV(path)
		return headers, rows, lead.CoerceHint{}, err
	case ".xlsx", ".xlsm":
		headers, rows, err = readExcel(path)
		return headers, rows, lead.CoerceHint{ExcelDates: true}, err
	case ".xls":
		headers, rows, err = readLegacyExcel(path)
		return headers, rows, lead.CoerceHint{ExcelDates: true}, err
	default:
		return nil, nil, lead.CoerceHint{}, fmt.Errorf("unsupported file type %q (want .xlsx, .xls or .csv)", filepath.Ext(path))
	}
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}
	return all[0], all[1:], nil
}

func readExcel(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("%s has no worksheet", filepath.Base(path))
	}

	all, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %s: %w", filepath.Base(path), err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("worksheet %q in %s is empty", sheet, filepath.Base(path))
	}
	return all[0], all[1:], nil
}

// readLegacyExcel handles the old BIFF .xls container, which excelize does
// not read. Date cells arrive as raw serials here too, so the same
// coercion hint applies.
func readLegacyExcel(path string) ([]string, [][]string, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s: %w", filepath.Base(path), err)
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, nil, fmt.Errorf("%s has no worksheet: %w", filepath.Base(path), err)
	}

	var all [][]string
	for i := 0; i <= sheet.GetNumberRows(); i++ {
		r, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		var values []string
		for _, cell := range r.GetCols() {
			values = append(values, cell.GetString())
		}
		all = append(all, values)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("worksheet in %s is empty", filepath.Base(path))
	}
	return all[0], all[1:], nil
}
