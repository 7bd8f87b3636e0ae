package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"buspass/internal/domain/pass"
)

const passesDDL = `
CREATE TABLE IF NOT EXISTS passes (
	id INT PRIMARY KEY,
	pass_key VARCHAR(32) NOT NULL,
	title VARCHAR(100) NOT NULL,
	duration_label VARCHAR(50) NOT NULL,
	price INT NOT NULL,
	features TEXT NOT NULL,
	UNIQUE KEY uniq_pass_key (pass_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

const bookingsDDL = `
CREATE TABLE IF NOT EXISTS bookings (
	booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_name VARCHAR(255) NOT NULL,
	aadhar_number CHAR(12) NOT NULL,
	address VARCHAR(500) NOT NULL,
	pass_id INT NOT NULL,
	booking_date DATE NOT NULL,
	expiry_date DATE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_pass (pass_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// EnsureSchema creates the passes and bookings tables when missing and seeds the pass
// catalog. Existing catalog rows are left alone.
func EnsureSchema(ctx context.Context, db Execer) error {
	tables := []struct {
		name string
		ddl  string
	}{
		{"passes", passesDDL},
		{"bookings", bookingsDDL},
	}
	for _, t := range tables {
		if HasTable(ctx, db, t.name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.Printf("[SCHEMA] created table %s", t.name)
	}
	return SeedPasses(ctx, db)
}

func SeedPasses(ctx context.Context, db Execer) error {
	for _, p := range pass.Catalog() {
		features, err := json.Marshal(p.Features)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			INSERT IGNORE INTO passes (id, pass_key, title, duration_label, price, features)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, string(p.Key), p.Title, p.Duration, p.Price, string(features)); err != nil {
			return fmt.Errorf("seed pass %s: %w", p.Key, err)
		}
	}
	return nil
}
