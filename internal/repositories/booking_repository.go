package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "buspass/internal/config"
	"buspass/internal/domain/models"
)

const bookingColumns = `
	booking_id, user_name, aadhar_number, address, pass_id,
	DATE_FORMAT(booking_date, '%Y-%m-%d'), DATE_FORMAT(expiry_date, '%Y-%m-%d')`

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts one booking and returns the store-assigned booking_id.
func (r BookingRepo) Create(ctx context.Context, req models.BookingRequest) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, sql.ErrConnDone
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO bookings
		(user_name, aadhar_number, address, pass_id, booking_date, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.UserName, req.AadharNumber, req.Address, req.PassID, req.BookingDate, req.ExpiryDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read insert id: %w", err)
	}
	return id, nil
}

// List returns every booking ordered by booking_id. No paging.
func (r BookingRepo) List(ctx context.Context) ([]models.BookingRecord, error) {
	db := r.db()
	if db == nil {
		return nil, sql.ErrConnDone
	}
	rows, err := db.QueryContext(ctx, `SELECT`+bookingColumns+` FROM bookings ORDER BY booking_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingRecord{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when the booking does not exist.
func (r BookingRepo) GetByID(ctx context.Context, id int64) (models.BookingRecord, error) {
	db := r.db()
	if db == nil {
		return models.BookingRecord{}, sql.ErrConnDone
	}
	row := db.QueryRowContext(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE booking_id=? LIMIT 1`, id)
	return scanBooking(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (models.BookingRecord, error) {
	var b models.BookingRecord
	var bookingDate, expiryDate sql.NullString
	if err := s.Scan(
		&b.BookingID,
		&b.UserName,
		&b.AadharNumber,
		&b.Address,
		&b.PassID,
		&bookingDate,
		&expiryDate,
	); err != nil {
		return models.BookingRecord{}, err
	}
	b.BookingDate = strings.TrimSpace(bookingDate.String)
	b.ExpiryDate = strings.TrimSpace(expiryDate.String)
	return b, nil
}
