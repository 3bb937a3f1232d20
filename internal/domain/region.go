package domain

// Region is a jurisdiction with its own rate table. Descriptors are
// immutable for the duration of a run: the queue seeded at start keeps
// the flags captured at that moment even if settings change later.
type Region struct {
	ID              string `json:"id" db:"region_id"`
	Name            string `json:"name"`
	ShippingTaxable bool   `json:"shipping_taxable"`
}
