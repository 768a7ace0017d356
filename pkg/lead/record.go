// Package lead holds the canonical trade-lead record and the pure
// transformations applied to it: header alias resolution, cell coercion,
// row normalization and category partitioning.
package lead

import (
	"github.com/google/uuid"
)

// IdentityKind distinguishes records the remote store has persisted from
// records that only exist in the local working set.
type IdentityKind int

const (
	// IdentityLocal marks a record that has never been persisted remotely.
	IdentityLocal IdentityKind = iota
	// IdentityRemote marks a record owned by the remote store.
	IdentityRemote
)

// Identity identifies a record within the working set. Exactly one kind is
// in effect at any time; a record switches from local to remote exactly
// once, when the remote store first persists it and assigns an id.
type Identity struct {
	Kind IdentityKind
	Key  string
}

// NewLocalIdentity returns a fresh locally generated identity.
func NewLocalIdentity() Identity {
	return Identity{Kind: IdentityLocal, Key: uuid.NewString()}
}

// RemoteIdentity wraps a server-assigned id.
func RemoteIdentity(id string) Identity {
	return Identity{Kind: IdentityRemote, Key: id}
}

// IsRemote reports whether the record has been persisted by the remote store.
func (id Identity) IsRemote() bool {
	return id.Kind == IdentityRemote
}

// Record is the canonical lead record every ingested row is converted
// into. All fields are strings and default to ""; there are no optional
// fields, so readers never need a presence check.
//
// Scope (Local/International) and Role (Buyer/Seller) are not separate
// stored facets: they are read from LeadType and Role by the partitioner.
type Record struct {
	Identity Identity

	Months        string
	Office        string
	RegDate       string
	AssDate       string
	LeadType      string
	Role          string
	ExpTrader     string
	Buyer         string
	Product       string
	Email         string
	Website       string
	HS            string
	HSDsc         string
	CatCode       string
	CommercialDsc string
	GrossWeight   string
	NetWeight     string
	FobValueUSD   string
	FobValueBirr  string
	Qty           string
	Unit          string
	Destination   string
}

// Columns lists the canonical column names in display order.
var Columns = []string{
	FieldMonths, FieldOffice, FieldRegDate, FieldAssDate, FieldLeadType,
	FieldRole, FieldExpTrader, FieldBuyer, FieldProduct, FieldEmail,
	FieldWebsite, FieldHS, FieldHSDsc, FieldCatCode, FieldCommercialDsc,
	FieldGrossWeight, FieldNetWeight, FieldFobValueUSD, FieldFobValueBirr,
	FieldQty, FieldUnit, FieldDestination,
}

// Canonical field names. These double as the keys of the alias table and
// the remote wire format.
const (
	FieldMonths        = "Months"
	FieldOffice        = "Office"
	FieldRegDate       = "RegDate"
	FieldAssDate       = "AssDate"
	FieldLeadType      = "LeadType"
	FieldRole          = "Role"
	FieldExpTrader     = "ExpTrader"
	FieldBuyer         = "Buyer"
	FieldProduct       = "Product"
	FieldEmail         = "Email"
	FieldWebsite       = "Website"
	FieldHS            = "HS"
	FieldHSDsc         = "HSDsc"
	FieldCatCode       = "CatCode"
	FieldCommercialDsc = "CommercialDsc"
	FieldGrossWeight   = "GrossWeight"
	FieldNetWeight     = "NetWeight"
	FieldFobValueUSD   = "FobValueUSD"
	FieldFobValueBirr  = "FobValueBirr"
	FieldQty           = "Qty"
	FieldUnit          = "Unit"
	FieldDestination   = "Destination"
)

// Get returns the value of the named canonical field, or "" for an
// unknown name.
func (r *Record) Get(field string) string {
	switch field {
	case FieldMonths:
		return r.Months
	case FieldOffice:
		return r.Office
	case FieldRegDate:
		return r.RegDate
	case FieldAssDate:
		return r.AssDate
	case FieldLeadType:
		return r.LeadType
	case FieldRole:
		return r.Role
	case FieldExpTrader:
		return r.ExpTrader
	case FieldBuyer:
		return r.Buyer
	case FieldProduct:
		return r.Product
	case FieldEmail:
		return r.Email
	case FieldWebsite:
		return r.Website
	case FieldHS:
		return r.HS
	case FieldHSDsc:
		return r.HSDsc
	case FieldCatCode:
		return r.CatCode
	case FieldCommercialDsc:
		return r.CommercialDsc
	case FieldGrossWeight:
		return r.GrossWeight
	case FieldNetWeight:
		return r.NetWeight
	case FieldFobValueUSD:
		return r.FobValueUSD
	case FieldFobValueBirr:
		return r.FobValueBirr
	case FieldQty:
		return r.Qty
	case FieldUnit:
		return r.Unit
	case FieldDestination:
		return r.Destination
	}
	return ""
}

// Set assigns the named canonical field. Unknown names are ignored, which
// keeps one bad mapping from failing a whole row.
func (r *Record) Set(field, value string) {
	switch field {
	case FieldMonths:
		r.Months = value
	case FieldOffice:
		r.Office = value
	case FieldRegDate:
		r.RegDate = value
	case FieldAssDate:
		r.AssDate = value
	case FieldLeadType:
		r.LeadType = value
	case FieldRole:
		r.Role = value
	case FieldExpTrader:
		r.ExpTrader = value
	case FieldBuyer:
		r.Buyer = value
	case FieldProduct:
		r.Product = value
	case FieldEmail:
		r.Email = value
	case FieldWebsite:
		r.Website = value
	case FieldHS:
		r.HS = value
	case FieldHSDsc:
		r.HSDsc = value
	case FieldCatCode:
		r.CatCode = value
	case FieldCommercialDsc:
		r.CommercialDsc = value
	case FieldGrossWeight:
		r.GrossWeight = value
	case FieldNetWeight:
		r.NetWeight = value
	case FieldFobValueUSD:
		r.FobValueUSD = value
	case FieldFobValueBirr:
		r.FobValueBirr = value
	case FieldQty:
		r.Qty = value
	case FieldUnit:
		r.Unit = value
	case FieldDestination:
		r.Destination = value
	}
}
