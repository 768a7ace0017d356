package lead

import "testing"

func mkRecord(leadType, role, product string) Record {
	return Record{
		Identity: NewLocalIdentity(),
		LeadType: leadType,
		Role:     role,
		Product:  product,
	}
}

func TestScopeOf(t *testing.T) {
	cases := []struct {
		leadType string
		want     Scope
	}{
		{"Local", ScopeLocal},
		{"local", ScopeLocal},
		{" LOCAL ", ScopeLocal},
		{"International", ScopeInternational},
		{"", ScopeInternational},         // blank defaults to International
		{"Domestic", ScopeInternational}, // unknown values too
	}
	for _, c := range cases {
		if got := ScopeOf(Record{LeadType: c.leadType}); got != c.want {
			t.Errorf("ScopeOf(%q) = %s, want %s", c.leadType, got, c.want)
		}
	}
}

func TestFilterScopeAndRole(t *testing.T) {
	records := []Record{
		mkRecord("Local", "Seller", "Cement"),
		mkRecord("Local", "Buyer", "Honey"),
		mkRecord("International", "Seller", "Sesame"),
		mkRecord("", "Seller", "Coffee"),
		mkRecord("LOCAL", "seller", "Beans"),
	}

	got := Filter(records, Query{Scope: ScopeLocal, Role: RoleSeller})
	if len(got) != 2 {
		t.Fatalf("expected 2 local sellers, got %d", len(got))
	}
	// Working-set order is preserved.
	if got[0].Product != "Cement" || got[1].Product != "Beans" {
		t.Errorf("order not preserved: %q, %q", got[0].Product, got[1].Product)
	}

	intl := Filter(records, Query{Scope: ScopeInternational})
	if len(intl) != 2 {
		t.Fatalf("expected 2 international records (blank counts), got %d", len(intl))
	}
}

func TestFilterSearch(t *testing.T) {
	records := []Record{
		mkRecord("International", "Buyer", "Washed Arabica Coffee"),
		mkRecord("International", "Seller", "Sesame Seed"),
	}
	records[1].Destination = "China"

	if got := Filter(records, Query{Scope: ScopeInternational, Search: "arabica"}); len(got) != 1 {
		t.Fatalf("search by product: got %d records", len(got))
	}
	if got := Filter(records, Query{Scope: ScopeInternational, Search: "china"}); len(got) != 1 {
		t.Fatalf("search matches any column: got %d records", len(got))
	}
	if got := Filter(records, Query{Scope: ScopeInternational, Search: "zzz"}); len(got) != 0 {
		t.Fatalf("non-matching search: got %d records", len(got))
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	records := []Record{mkRecord("Local", "Seller", "Cement")}
	before := records[0]
	Filter(records, Query{Scope: ScopeLocal})
	if records[0] != before {
		t.Fatal("Filter mutated the working set")
	}
}

func TestDominantScope(t *testing.T) {
	mostlyLocal := []Record{
		mkRecord("Local", "", ""), mkRecord("Local", "", ""), mkRecord("International", "", ""),
	}
	if got := DominantScope(mostlyLocal); got != ScopeLocal {
		t.Errorf("DominantScope = %s, want Local", got)
	}

	split := []Record{mkRecord("Local", "", ""), mkRecord("International", "", "")}
	if got := DominantScope(split); got != ScopeInternational {
		t.Errorf("tie should go to International, got %s", got)
	}
}
