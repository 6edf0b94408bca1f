package establishment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Fetch active establishments (optional city narrowing)
// --------------------------------------------------
func (r *PostgresRepository) FetchActive(
	ctx context.Context,
	city string,
) ([]*Establishment, error) {

	query := `
		SELECT
			id,
			name,
			description,
			city,
			latitude,
			longitude,
			categories,
			cuisines,
			price_tier,
			average_rating,
			review_count,
			boost_score,
			is_24_hours,
			working_hours,
			features,
			status,
			created_at
		FROM establishments
		WHERE status = 'active'
		  AND ($1 = '' OR LOWER(city) = LOWER($1))
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var establishments []*Establishment

	for rows.Next() {
		var est Establishment
		var hoursJSON []byte

		if err := rows.Scan(
			&est.ID,
			&est.Name,
			&est.Description,
			&est.City,
			&est.Latitude,
			&est.Longitude,
			&est.Categories,
			&est.Cuisines,
			&est.PriceTier,
			&est.AverageRating,
			&est.ReviewCount,
			&est.BoostScore,
			&est.Is24Hours,
			&hoursJSON,
			&est.Features,
			&est.Status,
			&est.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(hoursJSON) > 0 {
			if err := json.Unmarshal(hoursJSON, &est.WorkingHours); err != nil {
				return nil, err
			}
		}

		establishments = append(establishments, &est)
	}

	return establishments, rows.Err()
}

// --------------------------------------------------
// Update operator boost weight
// --------------------------------------------------
func (r *PostgresRepository) UpdateBoost(
	ctx context.Context,
	id string,
	boost float64,
) (string, error) {

	var city string
	err := r.db.QueryRow(ctx, `
		UPDATE establishments
		SET boost_score = $2
		WHERE id = $1
		RETURNING city
	`, id, boost).Scan(&city)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return city, err
}
