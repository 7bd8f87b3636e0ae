package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "buspass/internal/config"
	"buspass/internal/domain/models"
)

type PassRepo struct {
	DB *sql.DB
}

func (r PassRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the passes table as stored. features is a JSON array of strings; an empty
// column yields an empty list.
func (r PassRepo) List(ctx context.Context) ([]models.PassRow, error) {
	db := r.db()
	if db == nil {
		return nil, sql.ErrConnDone
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, pass_key, title, duration_label, price, COALESCE(features, '')
		FROM passes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PassRow{}
	for rows.Next() {
		var p models.PassRow
		var features string
		if err := rows.Scan(&p.ID, &p.PassKey, &p.Title, &p.Duration, &p.Price, &features); err != nil {
			return nil, err
		}
		p.Features = []string{}
		if features = strings.TrimSpace(features); features != "" {
			if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
				return nil, fmt.Errorf("pass %d features: %w", p.ID, err)
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
