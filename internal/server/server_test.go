package server

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/remote"
)

func newTestServer(t *testing.T) *remote.Client {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "leads.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	srv := httptest.NewServer(New(db).Handler())
	t.Cleanup(srv.Close)

	return remote.NewClient(srv.URL)
}

func rec(product, leadType string) lead.Record {
	return lead.Record{Identity: lead.NewLocalIdentity(), Product: product, LeadType: leadType}
}

func TestImportListRoundTrip(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	records, err := client.Import(ctx, []lead.Record{rec("Coffee", "International"), rec("Cement", "Local")}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("import returned %d records", len(records))
	}
	for _, r := range records {
		if !r.Identity.IsRemote() {
			t.Errorf("record %q has no server identity", r.Product)
		}
	}

	listed, err := client.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 || listed[0].Product != "Coffee" {
		t.Fatalf("listed = %+v", listed)
	}
}

func TestImportReplaceAndMerge(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	if _, err := client.Import(ctx, []lead.Record{rec("A", "Local")}, true); err != nil {
		t.Fatal(err)
	}
	merged, err := client.Import(ctx, []lead.Record{rec("B", "Local")}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 2 {
		t.Fatalf("merge import should keep existing rows, got %d", len(merged))
	}

	replaced, err := client.Import(ctx, []lead.Record{rec("C", "Local")}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(replaced) != 1 || replaced[0].Product != "C" {
		t.Fatalf("replace import left %+v", replaced)
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	created, err := client.Create(ctx, rec("Honey", "Local"))
	if err != nil {
		t.Fatal(err)
	}
	if !created.Identity.IsRemote() {
		t.Fatal("create must assign a server identity")
	}

	created.Product = "Raw Honey"
	updated, err := client.Update(ctx, created.Identity.Key, created)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Product != "Raw Honey" {
		t.Fatalf("updated = %+v", updated)
	}

	if err := client.Delete(ctx, created.Identity.Key); err != nil {
		t.Fatal(err)
	}
	listed, err := client.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Fatalf("delete left %d records", len(listed))
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	client := newTestServer(t)

	if _, err := client.Update(context.Background(), "9999", rec("Ghost", "Local")); err == nil {
		t.Fatal("expected an error updating a record that does not exist")
	}
}
