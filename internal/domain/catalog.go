package domain

// Catalog lists every region the remote source publishes a table for,
// with the default shipping-taxability policy of each jurisdiction.
// Armed-forces codes and U.S. territories are not served and are absent.
var Catalog = []Region{
	{ID: "AL", Name: "Alabama", ShippingTaxable: false},
	{ID: "AK", Name: "Alaska", ShippingTaxable: false},
	{ID: "AZ", Name: "Arizona", ShippingTaxable: false},
	{ID: "AR", Name: "Arkansas", ShippingTaxable: true},
	{ID: "CA", Name: "California", ShippingTaxable: false},
	{ID: "CO", Name: "Colorado", ShippingTaxable: true},
	{ID: "CT", Name: "Connecticut", ShippingTaxable: true},
	{ID: "DE", Name: "Delaware", ShippingTaxable: false},
	{ID: "DC", Name: "District of Columbia", ShippingTaxable: true},
	{ID: "FL", Name: "Florida", ShippingTaxable: true},
	{ID: "GA", Name: "Georgia", ShippingTaxable: true},
	{ID: "HI", Name: "Hawaii", ShippingTaxable: true},
	{ID: "ID", Name: "Idaho", ShippingTaxable: false},
	{ID: "IL", Name: "Illinois", ShippingTaxable: true},
	{ID: "IN", Name: "Indiana", ShippingTaxable: true},
	{ID: "IA", Name: "Iowa", ShippingTaxable: false},
	{ID: "KS", Name: "Kansas", ShippingTaxable: true},
	{ID: "KY", Name: "Kentucky", ShippingTaxable: true},
	{ID: "LA", Name: "Louisiana", ShippingTaxable: false},
	{ID: "ME", Name: "Maine", ShippingTaxable: false},
	{ID: "MD", Name: "Maryland", ShippingTaxable: false},
	{ID: "MA", Name: "Massachusetts", ShippingTaxable: false},
	{ID: "MI", Name: "Michigan", ShippingTaxable: true},
	{ID: "MN", Name: "Minnesota", ShippingTaxable: true},
	{ID: "MS", Name: "Mississippi", ShippingTaxable: true},
	{ID: "MO", Name: "Missouri", ShippingTaxable: false},
	{ID: "MT", Name: "Montana", ShippingTaxable: false},
	{ID: "NE", Name: "Nebraska", ShippingTaxable: true},
	{ID: "NV", Name: "Nevada", ShippingTaxable: false},
	{ID: "NH", Name: "New Hampshire", ShippingTaxable: false},
	{ID: "NJ", Name: "New Jersey", ShippingTaxable: true},
	{ID: "NM", Name: "New Mexico", ShippingTaxable: true},
	{ID: "NY", Name: "New York", ShippingTaxable: true},
	{ID: "NC", Name: "North Carolina", ShippingTaxable: true},
	{ID: "ND", Name: "North Dakota", ShippingTaxable: true},
	{ID: "OH", Name: "Ohio", ShippingTaxable: true},
	{ID: "OK", Name: "Oklahoma", ShippingTaxable: false},
	{ID: "OR", Name: "Oregon", ShippingTaxable: false},
	{ID: "PA", Name: "Pennsylvania", ShippingTaxable: true},
	{ID: "RI", Name: "Rhode Island", ShippingTaxable: true},
	{ID: "SC", Name: "South Carolina", ShippingTaxable: true},
	{ID: "SD", Name: "South Dakota", ShippingTaxable: true},
	{ID: "TN", Name: "Tennessee", ShippingTaxable: true},
	{ID: "TX", Name: "Texas", ShippingTaxable: true},
	{ID: "UT", Name: "Utah", ShippingTaxable: false},
	{ID: "VT", Name: "Vermont", ShippingTaxable: true},
	{ID: "VA", Name: "Virginia", ShippingTaxable: false},
	{ID: "WA", Name: "Washington", ShippingTaxable: true},
	{ID: "WV", Name: "West Virginia", ShippingTaxable: true},
	{ID: "WI", Name: "Wisconsin", ShippingTaxable: true},
	{ID: "WY", Name: "Wyoming", ShippingTaxable: false},
}

// CatalogRegion looks up a region by ID. The second return is false for
// unknown codes.
func CatalogRegion(id string) (Region, bool) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}
