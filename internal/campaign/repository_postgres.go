package campaign

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive(ctx context.Context, now time.Time) ([]Campaign, error) {
	query := `
		SELECT
			id,
			title,
			description,
			discount_fee,
			starts_at,
			ends_at
		FROM campaigns
		WHERE starts_at <= $1 AND ends_at > $1
		ORDER BY starts_at
	`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []Campaign

	for rows.Next() {
		var c Campaign
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.DiscountFee,
			&c.StartsAt,
			&c.EndsAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}
