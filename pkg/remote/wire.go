package remote

import (
	"fmt"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

// wireRecord is the JSON shape of a canonical record on the wire. The id
// is only present once the server has assigned one; local identity keys
// never leave the process.
type wireRecord struct {
	ID string `json:"id,omitempty"`

	Months        string `json:"Months"`
	Office        string `json:"Office"`
	RegDate       string `json:"RegDate"`
	AssDate       string `json:"AssDate"`
	LeadType      string `json:"LeadType"`
	Role          string `json:"Role"`
	ExpTrader     string `json:"ExpTrader"`
	Buyer         string `json:"Buyer"`
	Product       string `json:"Product"`
	Email         string `json:"Email"`
	Website       string `json:"Website"`
	HS            string `json:"HS"`
	HSDsc         string `json:"HSDsc"`
	CatCode       string `json:"CatCode"`
	CommercialDsc string `json:"CommercialDsc"`
	GrossWeight   string `json:"GrossWeight"`
	NetWeight     string `json:"NetWeight"`
	FobValueUSD   string `json:"FobValueUSD"`
	FobValueBirr  string `json:"FobValueBirr"`
	Qty           string `json:"Qty"`
	Unit          string `json:"Unit"`
	Destination   string `json:"Destination"`
}

func toWire(r lead.Record) wireRecord {
	w := wireRecord{
		Months: r.Months, Office: r.Office, RegDate: r.RegDate,
		AssDate: r.AssDate, LeadType: r.LeadType, Role: r.Role,
		ExpTrader: r.ExpTrader, Buyer: r.Buyer, Product: r.Product,
		Email: r.Email, Website: r.Website, HS: r.HS, HSDsc: r.HSDsc,
		CatCode: r.CatCode, CommercialDsc: r.CommercialDsc,
		GrossWeight: r.GrossWeight, NetWeight: r.NetWeight,
		FobValueUSD: r.FobValueUSD, FobValueBirr: r.FobValueBirr,
		Qty: r.Qty, Unit: r.Unit, Destination: r.Destination,
	}
	if r.Identity.IsRemote() {
		w.ID = r.Identity.Key
	}
	return w
}

func toWireBatch(records []lead.Record) []wireRecord {
	out := make([]wireRecord, len(records))
	for i, r := range records {
		out[i] = toWire(r)
	}
	return out
}

func fromWire(w wireRecord) (lead.Record, error) {
	if w.ID == "" {
		return lead.Record{}, fmt.Errorf("server record is missing an id")
	}
	return lead.Record{
		Identity: lead.RemoteIdentity(w.ID),
		Months:   w.Months, Office: w.Office, RegDate: w.RegDate,
		AssDate: w.AssDate, LeadType: w.LeadType, Role: w.Role,
		ExpTrader: w.ExpTrader, Buyer: w.Buyer, Product: w.Product,
		Email: w.Email, Website: w.Website, HS: w.HS, HSDsc: w.HSDsc,
		CatCode: w.CatCode, CommercialDsc: w.CommercialDsc,
		GrossWeight: w.GrossWeight, NetWeight: w.NetWeight,
		FobValueUSD: w.FobValueUSD, FobValueBirr: w.FobValueBirr,
		Qty: w.Qty, Unit: w.Unit, Destination: w.Destination,
	}, nil
}
