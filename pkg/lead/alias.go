package lead

import (
	"strings"
	"unicode"
)

// headerAliases maps normalized header names to canonical fields. Keys are
// the output of normalizeHeader, so "Lead Type", "LEAD_TYPE" and
// "lead-type" all hit the same entry. The table carries every spelling
// observed in real export files, including known data-entry typos ("BYER",
// "COMODITY"); a typo alias can only recover data, never lose it.
var headerAliases = map[string]string{
	// Months / period label
	"MONTHS":      FieldMonths,
	"MONTH":       FieldMonths,
	"PERIOD":      FieldMonths,
	"REPORTMONTH": FieldMonths,

	// Office
	"OFFICE":       FieldOffice,
	"OFFICECODE":   FieldOffice,
	"BRANCH":       FieldOffice,
	"BRANCHOFFICE": FieldOffice,

	// Registration date
	"REGDATE":          FieldRegDate,
	"REGISTRATIONDATE": FieldRegDate,
	"REGISTEREDDATE":   FieldRegDate,
	"DATEREGISTERED":   FieldRegDate,

	// Assessment date
	"ASSDATE":        FieldAssDate,
	"ASSESSMENTDATE": FieldAssDate,
	"ASSESSEDDATE":   FieldAssDate,

	// Lead type / scope
	"LEADTYPE":  FieldLeadType,
	"TYPE":      FieldLeadType,
	"LEADSCOPE": FieldLeadType,
	"SCOPE":     FieldLeadType,

	// Role
	"ROLE":        FieldRole,
	"LEADROLE":    FieldRole,
	"BUYERSELLER": FieldRole,
	"BYER":        FieldRole,

	// Exporting trader
	"EXPTRADER":       FieldExpTrader,
	"EXPORTTRADER":    FieldExpTrader,
	"EXPORTER":        FieldExpTrader,
	"TRADER":          FieldExpTrader,
	"TRADERNAME":      FieldExpTrader,
	"EXPORTERCOMPANY": FieldExpTrader,

	// Counterparty
	"BUYER":        FieldBuyer,
	"BUYERNAME":    FieldBuyer,
	"IMPORTER":     FieldBuyer,
	"COUNTERPARTY": FieldBuyer,
	"BUYERCOMPANY": FieldBuyer,

	// Product
	"PRODUCT":     FieldProduct,
	"PRODUCTNAME": FieldProduct,
	"COMMODITY":   FieldProduct,
	"COMODITY":    FieldProduct,
	"ITEM":        FieldProduct,

	// Email
	"EMAIL":        FieldEmail,
	"MAIL":         FieldEmail,
	"EMAILADDRESS": FieldEmail,
	"BUYEREMAIL":   FieldEmail,

	// Website
	"WEBSITE":  FieldWebsite,
	"WEB":      FieldWebsite,
	"URL":      FieldWebsite,
	"HOMEPAGE": FieldWebsite,

	// Harmonized-system code
	"HS":       FieldHS,
	"HSCODE":   FieldHS,
	"HSNUMBER": FieldHS,

	// HS description
	"HSDSC":         FieldHSDsc,
	"HSDESC":        FieldHSDsc,
	"HSDESCRIPTION": FieldHSDsc,

	// Category code
	"CATCODE":      FieldCatCode,
	"CATEGORYCODE": FieldCatCode,
	"CATEGORY":     FieldCatCode,

	// Commercial description
	"COMMERCIALDSC":         FieldCommercialDsc,
	"COMMERCIALDESC":        FieldCommercialDsc,
	"COMMERCIALDESCRIPTION": FieldCommercialDsc,
	"DESCRIPTION":           FieldCommercialDsc,

	// Weights
	"GROSSWEIGHT":   FieldGrossWeight,
	"GROSSWT":       FieldGrossWeight,
	"GROSSWEIGHTKG": FieldGrossWeight,
	"NETWEIGHT":     FieldNetWeight,
	"NETWT":         FieldNetWeight,
	"NETWEIGHTKG":   FieldNetWeight,

	// FOB values
	"FOBVALUEUSD":   FieldFobValueUSD,
	"FOBUSD":        FieldFobValueUSD,
	"FOBVALUEINUSD": FieldFobValueUSD,
	"FOBVALUEBIRR":  FieldFobValueBirr,
	"FOBBIRR":       FieldFobValueBirr,
	"FOBVALUEETB":   FieldFobValueBirr,

	// Quantity and unit
	"QTY":           FieldQty,
	"QUANTITY":      FieldQty,
	"UNIT":          FieldUnit,
	"UOM":           FieldUnit,
	"UNITOFMEASURE": FieldUnit,

	// Destination
	"DESTINATION":        FieldDestination,
	"DEST":               FieldDestination,
	"DESTINATIONCOUNTRY": FieldDestination,
	"COUNTRY":            FieldDestination,
}

// normalizeHeader upper-cases the header and strips everything that is not
// a letter or digit, absorbing the casing and punctuation variance found
// in real-world exports.
func normalizeHeader(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range header {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// ResolveHeader maps an arbitrary spreadsheet column header onto its
// canonical field name. The second return is false for headers with no
// mapping; callers ignore such columns rather than failing the import.
func ResolveHeader(header string) (string, bool) {
	field, ok := headerAliases[normalizeHeader(header)]
	return field, ok
}
