package services

import (
	"context"
	"errors"
	"testing"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
	"buspass/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		UserName:     "Asha Patil",
		AadharNumber: "123456789012",
		Address:      "12 MG Road, Pune",
		PassID:       2,
		BookingDate:  "2025-01-10",
		ExpiryDate:   "2025-02-10",
	}
}

// Submitted values are stored verbatim, spacing included.
func TestBookingServiceCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	req := validRequest()
	req.UserName = "Asha  Patil"
	req.Address = " 12 MG Road,  Pune "
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("Asha  Patil", "123456789012", " 12 MG Road,  Pune ", 2, "2025-01-10", "2025-02-10").
		WillReturnResult(sqlmock.NewResult(5, 1))

	svc := BookingService{BookingRepo: repositories.BookingRepo{DB: db}}
	id, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 5 {
		t.Fatalf("id = %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateRejectsWithoutInsert(t *testing.T) {
	cases := map[string]func(*models.BookingRequest){
		"missing user_name":     func(r *models.BookingRequest) { r.UserName = "" },
		"blank address":         func(r *models.BookingRequest) { r.Address = "   " },
		"blank user_name":       func(r *models.BookingRequest) { r.UserName = " \t " },
		"missing pass_id":       func(r *models.BookingRequest) { r.PassID = 0 },
		"missing booking_date":  func(r *models.BookingRequest) { r.BookingDate = "" },
		"missing expiry_date":   func(r *models.BookingRequest) { r.ExpiryDate = "" },
		"short aadhar":          func(r *models.BookingRequest) { r.AadharNumber = "12345" },
		"non-digit aadhar":      func(r *models.BookingRequest) { r.AadharNumber = "1234-5678-90" },
		"bad date":              func(r *models.BookingRequest) { r.BookingDate = "10/01/2025" },
		"expiry before booking": func(r *models.BookingRequest) { r.ExpiryDate = "2025-01-09" },
	}
	for name, mutate := range cases {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock init error: %v", err)
		}

		req := validRequest()
		mutate(&req)
		_, err = BookingService{BookingRepo: repositories.BookingRepo{DB: db}}.Create(context.Background(), req)
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		db.Close()
	}
}

func TestBookingServiceStoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("Error 1146: Table 'pmpml.bookings' doesn't exist"))
	mock.ExpectQuery("FROM bookings").WillReturnError(errors.New("bad connection"))

	svc := BookingService{BookingRepo: repositories.BookingRepo{DB: db}}
	if _, err := svc.Create(context.Background(), validRequest()); !domain.IsStoreUnavailable(err) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
	if _, err := svc.List(context.Background()); !domain.IsStoreUnavailable(err) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}

func TestBookingServiceGetRejectsBadID(t *testing.T) {
	if _, err := (BookingService{}).Get(context.Background(), 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
