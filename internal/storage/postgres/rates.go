package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"ratesync/internal/domain"
)

// RateStore is the destination rate table. All statements go through
// GetExecutor so the engine can wrap delete+import+adjust for a region
// in one transaction.
type RateStore struct {
	db *sqlx.DB
}

func NewRateStore(db *sqlx.DB) *RateStore {
	return &RateStore{db: db}
}

func (s *RateStore) DeleteByRegion(ctx context.Context, regionID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tax_rates WHERE region_id = $1",
		regionID,
	)
	return err
}

func (s *RateStore) InsertBatch(ctx context.Context, rows []domain.RateRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO tax_rates
		(region_id, postcode, city, rate, name, priority, compound, shipping_taxable, class)
		VALUES `)
	valueArgs := make([]interface{}, 0, len(rows)*9)

	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 9; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*9 + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			row.RegionID, row.Postcode, row.City, row.Rate, row.Name,
			row.Priority, row.Compound, row.ShippingTaxable, row.Class,
		)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ClearShippingFlag unsets the shipping-taxable flag on every rate row
// of a region. The importer marks all imported rows shipping-taxable;
// this applies the region policy afterwards.
func (s *RateStore) ClearShippingFlag(ctx context.Context, regionID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE tax_rates SET shipping_taxable = FALSE WHERE region_id = $1",
		regionID,
	)
	return err
}

func (s *RateStore) CountByRegion(ctx context.Context, regionID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM tax_rates WHERE region_id = $1",
		regionID,
	)
	return count, err
}

// DeleteOrphanedLocations garbage-collects location records whose rate
// row no longer exists, left behind by prior imports and deletes.
func (s *RateStore) DeleteOrphanedLocations(ctx context.Context) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		DELETE FROM tax_rate_locations
		WHERE tax_rate_id NOT IN (SELECT id FROM tax_rates)`,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PruneRegionsExcept removes rate rows for regions no longer selected by
// the operator.
func (s *RateStore) PruneRegionsExcept(ctx context.Context, regionIDs []string) error {
	if len(regionIDs) == 0 {
		_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM tax_rates")
		return err
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tax_rates WHERE region_id <> ALL($1)",
		pq.Array(regionIDs),
	)
	return err
}
