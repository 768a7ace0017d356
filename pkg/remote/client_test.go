package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

func TestListDecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/lead-records" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"records":[{"id":"7","Product":"Sesame","LeadType":"International"}]}`))
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
	rec := records[0]
	if !rec.Identity.IsRemote() || rec.Identity.Key != "7" {
		t.Errorf("identity = %+v, want remote 7", rec.Identity)
	}
	if rec.Product != "Sesame" {
		t.Errorf("Product = %q", rec.Product)
	}
	// Fields absent from the payload default to empty strings.
	if rec.Email != "" {
		t.Errorf("Email = %q, want empty", rec.Email)
	}
}

func TestListRejectsRecordWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[{"Product":"Sesame"}]}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).List(context.Background()); err == nil {
		t.Fatal("expected an error for a server record without an id")
	}
}

func TestImportSendsBatchAndFlag(t *testing.T) {
	var got struct {
		Rows            []map[string]any `json:"rows"`
		ReplaceExisting bool             `json:"replaceExisting"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/lead-records/import" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.Write([]byte(`{"records":[{"id":"1","Product":"Coffee"}]}`))
	}))
	defer srv.Close()

	rows := []lead.Record{{Identity: lead.NewLocalIdentity(), Product: "Coffee"}}
	records, err := NewClient(srv.URL).Import(context.Background(), rows, true)
	if err != nil {
		t.Fatal(err)
	}

	if !got.ReplaceExisting {
		t.Error("replaceExisting flag not sent")
	}
	if len(got.Rows) != 1 {
		t.Fatalf("sent %d rows", len(got.Rows))
	}
	if _, present := got.Rows[0]["id"]; present {
		t.Error("local identity keys must not go on the wire")
	}
	if len(records) != 1 || records[0].Identity.Key != "1" {
		t.Fatalf("decoded batch = %+v", records)
	}
}

func TestUpdateHitsRecordPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/lead-records/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"record":{"id":"42","Product":"Updated"}}`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).Update(context.Background(), "42", lead.Record{Product: "Updated"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Product != "Updated" || rec.Identity.Key != "42" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestServerErrorSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 404 is not retried by the transport, so the error returns at once.
		http.Error(w, "no such record", http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), "99")
	if err == nil {
		t.Fatal("expected error")
	}
}
