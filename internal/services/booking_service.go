package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
	"buspass/internal/metrics"
	"buspass/internal/repositories"
	"buspass/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepo
	RequestID   string
}

// Create validates req and inserts it exactly as submitted. Nothing is written when
// validation fails.
func (s BookingService) Create(ctx context.Context, req models.BookingRequest) (int64, error) {
	if err := validateBookingRequest(req); err != nil {
		metrics.BookingsRejected.WithLabelValues("validation").Inc()
		return 0, err
	}

	id, err := s.BookingRepo.Create(ctx, req)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("store").Inc()
		utils.LogEvent(s.RequestID, "booking", "create_failed", err.Error())
		return 0, domain.StoreUnavailableError{Op: "insert", Err: err}
	}

	metrics.BookingsCreated.WithLabelValues(strconv.Itoa(req.PassID)).Inc()
	utils.LogEvent(s.RequestID, "booking", "created", fmt.Sprintf("booking_id=%d pass_id=%d aadhar=%s expiry=%s",
		id, req.PassID, utils.MaskAadhar(req.AadharNumber), req.ExpiryDate))
	return id, nil
}

func (s BookingService) List(ctx context.Context) ([]models.BookingRecord, error) {
	rows, err := s.BookingRepo.List(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "list_failed", err.Error())
		return nil, domain.StoreUnavailableError{Op: "query", Err: err}
	}
	return rows, nil
}

func (s BookingService) Get(ctx context.Context, id int64) (models.BookingRecord, error) {
	if id <= 0 {
		return models.BookingRecord{}, domain.ValidationError{Field: "booking_id", Msg: "must be a positive integer"}
	}
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingRecord{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.BookingRecord{}, domain.StoreUnavailableError{Op: "query", Err: err}
	}
	return b, nil
}

// validateBookingRequest checks presence first, then the ID format and date order.
// Whitespace-only values count as missing; the values themselves are not rewritten.
func validateBookingRequest(req models.BookingRequest) error {
	blank := []struct{ field, value string }{
		{"user_name", req.UserName},
		{"aadhar_number", req.AadharNumber},
		{"address", req.Address},
		{"booking_date", req.BookingDate},
		{"expiry_date", req.ExpiryDate},
	}
	for _, f := range blank {
		if strings.TrimSpace(f.value) == "" {
			return domain.ValidationError{Field: f.field, Msg: "is required"}
		}
	}
	if err := domain.Validate(req); err != nil {
		return err
	}
	if !utils.IsDigits(req.AadharNumber) {
		return domain.ValidationError{Field: "aadhar_number", Msg: "must be 12 digits"}
	}
	booking, err := utils.ParseDate(req.BookingDate)
	if err != nil {
		return domain.ValidationError{Field: "booking_date", Msg: "must be a YYYY-MM-DD date", Err: err}
	}
	expiry, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return domain.ValidationError{Field: "expiry_date", Msg: "must be a YYYY-MM-DD date", Err: err}
	}
	if expiry.Before(booking) {
		return domain.ValidationError{Field: "expiry_date", Msg: "must not be before booking_date"}
	}
	return nil
}
