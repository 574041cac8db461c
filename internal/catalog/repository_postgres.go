package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Load the full catalog in display order
// --------------------------------------------------
func (r *PostgresRepository) GetCatalog(ctx context.Context) (*Catalog, error) {
	planQuery := `
		SELECT
			id,
			name,
			monthly_fee,
			sim_card_type,
			off_peak,
			COALESCE(bundled_calling_option_id, '')
		FROM plans
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, planQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog Catalog

	for rows.Next() {
		var p Plan
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.MonthlyFee,
			&p.SimCardType,
			&p.OffPeak,
			&p.BundledCallingOptionID,
		); err != nil {
			return nil, err
		}
		catalog.Plans = append(catalog.Plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	optionQuery := `
		SELECT
			id,
			name,
			monthly_fee,
			calling,
			requires_voice_sim
		FROM options
		ORDER BY position
	`

	optRows, err := r.db.Query(ctx, optionQuery)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o Option
		if err := optRows.Scan(
			&o.ID,
			&o.Name,
			&o.MonthlyFee,
			&o.Calling,
			&o.RequiresVoiceSim,
		); err != nil {
			return nil, err
		}
		catalog.Options = append(catalog.Options, o)
	}
	if err := optRows.Err(); err != nil {
		return nil, err
	}

	return &catalog, nil
}
