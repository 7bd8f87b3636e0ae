// Package flow drives the select → apply → payment → pass steps on behalf of one visitor.
// It talks to the booking API through BookingAPI and hands state between steps through a
// session.Session.
package flow

import (
	"context"
	"time"

	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
)

// BookingAPI is the part of the booking API the flow calls. *client.Client satisfies it.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingCreated, error)
	ListBookings(ctx context.Context) ([]models.BookingRecord, error)
}

type Step string

const (
	StepSelectPass    Step = "select-pass"
	StepPayment       Step = "payment"
	StepPassGenerated Step = "pass-generated"
)

type Flow struct {
	API          BookingAPI
	PaymentDelay time.Duration

	// Now and PassNumber default to time.Now and pass.GeneratePassNumber.
	Now        func() time.Time
	PassNumber func(area string) string
}

func (f Flow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f Flow) passNumber(area string) string {
	if f.PassNumber != nil {
		return f.PassNumber(area)
	}
	return pass.GeneratePassNumber(area)
}
