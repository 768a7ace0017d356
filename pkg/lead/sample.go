package lead

// SampleRecords returns the built-in fallback dataset shown when the remote
// store is unreachable or empty. Each call mints fresh local identities so
// sample rows can never collide with persisted data, and sample data is
// never submitted back to the remote store.
func SampleRecords() []Record {
	base := []Record{
		{
			Months: "January", Office: "AA", RegDate: "1/8/2024", AssDate: "1/15/2024",
			LeadType: "International", Role: "Buyer",
			ExpTrader: "Mullege PLC", Buyer: "Hamburg Coffee Company",
			Product: "Washed Arabica Coffee", Email: "purchasing@hamburg-coffee.example",
			Website: "https://hamburg-coffee.example", HS: "0901.11", HSDsc: "Coffee, not roasted, not decaffeinated",
			CatCode: "COF", CommercialDsc: "Sidamo Grade 2, 60kg bags",
			GrossWeight: "19,800.00", NetWeight: "19,200.00",
			FobValueUSD: "86,400.00", FobValueBirr: "4,924,800.00",
			Qty: "320", Unit: "Bag", Destination: "Germany",
		},
		{
			Months: "January", Office: "DD", RegDate: "1/12/2024", AssDate: "1/19/2024",
			LeadType: "International", Role: "Seller",
			ExpTrader: "Dire Oilseeds Export", Buyer: "Shandong Grains Ltd",
			Product: "Humera Sesame Seed", Email: "trade@shandong-grains.example",
			Website: "", HS: "1207.40", HSDsc: "Sesamum seeds",
			CatCode: "OLS", CommercialDsc: "Whitish Humera type, 50kg pp bags",
			GrossWeight: "25,500.00", NetWeight: "25,000.00",
			FobValueUSD: "42,500.00", FobValueBirr: "2,422,500.00",
			Qty: "500", Unit: "Bag", Destination: "China",
		},
		{
			Months: "February", Office: "AA", RegDate: "2/2/2024", AssDate: "2/9/2024",
			LeadType: "Local", Role: "Seller",
			ExpTrader: "Adama Pulse Trading", Buyer: "Merkato Wholesale Union",
			Product: "Red Kidney Beans", Email: "sales@adamapulse.example",
			Website: "https://adamapulse.example", HS: "0713.33", HSDsc: "Kidney beans, dried",
			CatCode: "PUL", CommercialDsc: "Machine cleaned, 100kg bags",
			GrossWeight: "10,100.00", NetWeight: "10,000.00",
			FobValueUSD: "9,000.00", FobValueBirr: "513,000.00",
			Qty: "100", Unit: "Bag", Destination: "Addis Ababa",
		},
		{
			Months: "February", Office: "MK", RegDate: "2/6/2024", AssDate: "2/13/2024",
			LeadType: "Local", Role: "Buyer",
			ExpTrader: "Mekelle Agro Industry", Buyer: "Tigray Farmers Cooperative",
			Product: "Raw Honey", Email: "",
			Website: "", HS: "0409.00", HSDsc: "Natural honey",
			CatCode: "HON", CommercialDsc: "White honey, food grade drums",
			GrossWeight: "3,150.00", NetWeight: "3,000.00",
			FobValueUSD: "12,600.00", FobValueBirr: "718,200.00",
			Qty: "15", Unit: "Drum", Destination: "Mekelle",
		},
		{
			Months: "March", Office: "AA", RegDate: "3/4/2024", AssDate: "3/11/2024",
			LeadType: "International", Role: "Buyer",
			ExpTrader: "Bahir Dar Horticulture", Buyer: "Riyadh Fresh Produce",
			Product: "Fresh Cut Roses", Email: "import@riyadh-fresh.example",
			Website: "https://riyadh-fresh.example", HS: "0603.11", HSDsc: "Fresh cut roses and buds",
			CatCode: "FLR", CommercialDsc: "Premium long stem, air freight",
			GrossWeight: "2,040.00", NetWeight: "1,900.00",
			FobValueUSD: "28,500.00", FobValueBirr: "1,624,500.00",
			Qty: "950", Unit: "Box", Destination: "Saudi Arabia",
		},
		{
			Months: "March", Office: "HW", RegDate: "3/18/2024", AssDate: "3/25/2024",
			LeadType: "International", Role: "Seller",
			ExpTrader: "Hawassa Textile Share Co", Buyer: "Milano Apparel SRL",
			Product: "Cotton Garments", Email: "orders@milano-apparel.example",
			Website: "", HS: "6109.10", HSDsc: "T-shirts, of cotton, knitted",
			CatCode: "TEX", CommercialDsc: "Knitted t-shirts, assorted sizes",
			GrossWeight: "4,420.00", NetWeight: "4,200.00",
			FobValueUSD: "33,110.00", FobValueBirr: "1,887,270.00",
			Qty: "14,000", Unit: "Piece", Destination: "Italy",
		},
		{
			Months: "April", Office: "DD", RegDate: "4/1/2024", AssDate: "4/8/2024",
			LeadType: "Local", Role: "Seller",
			ExpTrader: "Dire Dawa Cement Factory", Buyer: "Eastern Builders PLC",
			Product: "Portland Cement", Email: "supply@easternbuilders.example",
			Website: "", HS: "2523.29", HSDsc: "Portland cement, other",
			CatCode: "CEM", CommercialDsc: "42.5R grade, 50kg bags",
			GrossWeight: "50,500.00", NetWeight: "50,000.00",
			FobValueUSD: "7,000.00", FobValueBirr: "399,000.00",
			Qty: "1,000", Unit: "Bag", Destination: "Dire Dawa",
		},
		{
			Months: "April", Office: "AA", RegDate: "4/10/2024", AssDate: "4/17/2024",
			LeadType: "International", Role: "Buyer",
			ExpTrader: "Oromia Coffee Farmers Union", Buyer: "Portland Roasters Inc",
			Product: "Natural Arabica Coffee", Email: "green@portlandroasters.example",
			Website: "https://portlandroasters.example", HS: "0901.11", HSDsc: "Coffee, not roasted, not decaffeinated",
			CatCode: "COF", CommercialDsc: "Guji natural Grade 1, 60kg bags",
			GrossWeight: "12,380.00", NetWeight: "12,000.00",
			FobValueUSD: "66,000.00", FobValueBirr: "3,762,000.00",
			Qty: "200", Unit: "Bag", Destination: "United States",
		},
	}

	out := make([]Record, len(base))
	for i, r := range base {
		r.Identity = NewLocalIdentity()
		out[i] = r
	}
	return out
}
