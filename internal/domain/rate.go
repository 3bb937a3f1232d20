package domain

import "time"

// RateRow is one normalized tax-rate record imported from a region's
// table file.
type RateRow struct {
	ID              int64     `db:"id"`
	RegionID        string    `db:"region_id"`
	Postcode        string    `db:"postcode"`
	City            string    `db:"city"`
	Rate            float64   `db:"rate"`
	Name            string    `db:"name"`
	Priority        int       `db:"priority"`
	Compound        bool      `db:"compound"`
	ShippingTaxable bool      `db:"shipping_taxable"`
	Class           string    `db:"class"`
	CreatedAt       time.Time `db:"created_at"`
}
