package lead

import "strings"

// Scope is the Local/International facet of a lead, read from LeadType.
type Scope string

const (
	ScopeLocal         Scope = "Local"
	ScopeInternational Scope = "International"
)

// Role values matched by the role filter.
const (
	RoleBuyer  = "Buyer"
	RoleSeller = "Seller"
)

// ScopeOf reads the scope facet from a record. Anything that is not a
// case-insensitive "local" — including blank and unknown lead types — is
// International. Flagged with product as possibly accidental; change the
// default here if they decide otherwise.
func ScopeOf(r Record) Scope {
	if strings.EqualFold(strings.TrimSpace(r.LeadType), "local") {
		return ScopeLocal
	}
	return ScopeInternational
}

// Query selects a subset of the working set. Zero values mean "no filter"
// for Role and Search; Scope always partitions.
type Query struct {
	Scope  Scope
	Role   string // case-insensitive exact match on the Role field
	Search string // case-insensitive substring match on any column
}

// Filter returns the records matching the query, preserving working-set
// order. It is pure: the input slice is never mutated and results are
// recomputed on every call.
func Filter(records []Record, q Query) []Record {
	var out []Record
	for _, r := range records {
		if ScopeOf(r) != q.Scope {
			continue
		}
		if q.Role != "" && !strings.EqualFold(strings.TrimSpace(r.Role), q.Role) {
			continue
		}
		if q.Search != "" && !matchesSearch(r, q.Search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r Record, needle string) bool {
	needle = strings.ToLower(needle)
	for _, col := range Columns {
		if strings.Contains(strings.ToLower(r.Get(col)), needle) {
			return true
		}
	}
	return false
}

// DominantScope returns the scope the batch predominantly belongs to, used
// as a view-selection hint after an import. Ties go to International, the
// partition blanks land in.
func DominantScope(records []Record) Scope {
	local := 0
	for _, r := range records {
		if ScopeOf(r) == ScopeLocal {
			local++
		}
	}
	if local*2 > len(records) {
		return ScopeLocal
	}
	return ScopeInternational
}
