package server

import (
	"context"
	"database/sql"
	"strconv"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite database behind the reference lead-records server.
type DB struct {
	sql *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS lead_records (
  id             INTEGER PRIMARY KEY,
  months         TEXT NOT NULL DEFAULT '',
  office         TEXT NOT NULL DEFAULT '',
  reg_date       TEXT NOT NULL DEFAULT '',
  ass_date       TEXT NOT NULL DEFAULT '',
  lead_type      TEXT NOT NULL DEFAULT '',
  role           TEXT NOT NULL DEFAULT '',
  exp_trader     TEXT NOT NULL DEFAULT '',
  buyer          TEXT NOT NULL DEFAULT '',
  product        TEXT NOT NULL DEFAULT '',
  email          TEXT NOT NULL DEFAULT '',
  website        TEXT NOT NULL DEFAULT '',
  hs             TEXT NOT NULL DEFAULT '',
  hs_dsc         TEXT NOT NULL DEFAULT '',
  cat_code       TEXT NOT NULL DEFAULT '',
  commercial_dsc TEXT NOT NULL DEFAULT '',
  gross_weight   TEXT NOT NULL DEFAULT '',
  net_weight     TEXT NOT NULL DEFAULT '',
  fob_value_usd  TEXT NOT NULL DEFAULT '',
  fob_value_birr TEXT NOT NULL DEFAULT '',
  qty            TEXT NOT NULL DEFAULT '',
  unit           TEXT NOT NULL DEFAULT '',
  destination    TEXT NOT NULL DEFAULT '',
  created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_lead_type ON lead_records(lead_type);
	`); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

const columnList = `months, office, reg_date, ass_date, lead_type, role,
exp_trader, buyer, product, email, website, hs, hs_dsc, cat_code,
commercial_dsc, gross_weight, net_weight, fob_value_usd, fob_value_birr,
qty, unit, destination`

const insertSQL = `INSERT INTO lead_records(` + columnList + `)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

// fields returns pointers to the record's canonical columns in columnList
// order, shared by the scan and insert paths.
func (r *apiRecord) fields() []*string {
	return []*string{
		&r.Months, &r.Office, &r.RegDate, &r.AssDate, &r.LeadType, &r.Role,
		&r.ExpTrader, &r.Buyer, &r.Product, &r.Email, &r.Website, &r.HS,
		&r.HSDsc, &r.CatCode, &r.CommercialDsc, &r.GrossWeight, &r.NetWeight,
		&r.FobValueUSD, &r.FobValueBirr, &r.Qty, &r.Unit, &r.Destination,
	}
}

func (r *apiRecord) values() []any {
	fields := r.fields()
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = *f
	}
	return out
}

// List returns every stored record in insertion order.
func (d *DB) List(ctx context.Context) ([]apiRecord, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, "+columnList+" FROM lead_records ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []apiRecord{}
	for rows.Next() {
		var r apiRecord
		var id int64
		dest := []any{&id}
		for _, f := range r.fields() {
			dest = append(dest, f)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		r.ID = strconv.FormatInt(id, 10)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ImportBatch inserts the rows in one transaction, wiping the table first
// when replace is set, and returns the full stored set afterwards.
func (d *DB) ImportBatch(ctx context.Context, records []apiRecord, replace bool) ([]apiRecord, error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if replace {
		if _, err = tx.ExecContext(ctx, "DELETE FROM lead_records"); err != nil {
			return nil, err
		}
	}
	for i := range records {
		if _, err = tx.ExecContext(ctx, insertSQL, records[i].values()...); err != nil {
			return nil, err
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return d.List(ctx)
}

// Insert stores a single record and returns it with its assigned id.
func (d *DB) Insert(ctx context.Context, record apiRecord) (apiRecord, error) {
	res, err := d.sql.ExecContext(ctx, insertSQL, record.values()...)
	if err != nil {
		return apiRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return apiRecord{}, err
	}
	record.ID = strconv.FormatInt(id, 10)
	return record, nil
}

// Update replaces the record with the given id. sql.ErrNoRows is returned
// when no such record exists.
func (d *DB) Update(ctx context.Context, id int64, record apiRecord) (apiRecord, error) {
	cols := []string{
		"months", "office", "reg_date", "ass_date", "lead_type", "role",
		"exp_trader", "buyer", "product", "email", "website", "hs", "hs_dsc",
		"cat_code", "commercial_dsc", "gross_weight", "net_weight",
		"fob_value_usd", "fob_value_birr", "qty", "unit", "destination",
	}
	set := ""
	for i, c := range cols {
		if i > 0 {
			set += ", "
		}
		set += c + " = ?"
	}
	args := append(record.values(), id)
	res, err := d.sql.ExecContext(ctx, "UPDATE lead_records SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return apiRecord{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apiRecord{}, err
	}
	if n == 0 {
		return apiRecord{}, sql.ErrNoRows
	}
	record.ID = strconv.FormatInt(id, 10)
	return record, nil
}

// Delete removes the record with the given id.
func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM lead_records WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
