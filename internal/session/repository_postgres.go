package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"keiyaku/internal/selection"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Upsert a session (called on every state change)
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, s *Session) error {
	state, err := json.Marshal(s.Selection)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO signup_sessions (
			id,
			contract_type,
			selection,
			current_path,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			contract_type = EXCLUDED.contract_type,
			selection     = EXCLUDED.selection,
			current_path  = EXCLUDED.current_path,
			updated_at    = EXCLUDED.updated_at
	`

	_, err = r.db.Exec(
		ctx,
		query,
		s.ID,
		s.ContractType,
		state,
		s.CurrentPath,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*Session, error) {
	query := `
		SELECT
			id,
			contract_type,
			selection,
			current_path,
			created_at,
			updated_at
		FROM signup_sessions
		WHERE id = $1
	`

	var s Session
	var state []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ContractType,
		&state,
		&s.CurrentPath,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.Selection = selection.NewState()
	if err := json.Unmarshal(state, &s.Selection); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM signup_sessions WHERE updated_at < $1`,
		before,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
