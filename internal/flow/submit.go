package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
	"buspass/internal/metrics"
	"buspass/internal/session"
	"buspass/internal/utils"
)

const (
	msgBookingFailed = "Booking failed. Please try again."
	msgNetworkFailed = "Something went wrong. Please check your connection."
)

// Submit validates the form, sends exactly one create-booking call and, only when that
// succeeds, stashes the pass record in sess. The next step is always payment.
func (f Flow) Submit(ctx context.Context, sess *session.Session, form models.PersonalInfoForm, kind pass.Kind) (models.ClientPassInfo, error) {
	form = normalizeForm(form)
	if !kind.Valid() {
		return models.ClientPassInfo{}, domain.ValidationError{Field: "passType", Msg: fmt.Sprintf("unknown pass type %q", kind)}
	}
	if err := domain.Validate(form); err != nil {
		return models.ClientPassInfo{}, err
	}
	if !utils.IsDigits(form.AadharNumber) {
		return models.ClientPassInfo{}, domain.ValidationError{Field: "aadharNumber", Msg: "must be 12 digits"}
	}

	today := f.now()
	req := BookingRequestFor(form, kind, today)

	created, err := f.API.CreateBooking(ctx, req)
	if err != nil {
		metrics.FlowSubmissions.WithLabelValues("failed").Inc()
		return models.ClientPassInfo{}, submitError(err)
	}

	info := models.ClientPassInfo{
		PassType:     kind,
		BookingID:    created.BookingID,
		PassID:       req.PassID,
		UserName:     form.UserName,
		AadharNumber: form.AadharNumber,
		Address:      form.Address,
		Area:         form.Area,
		Date:         today,
		BookingDate:  req.BookingDate,
		ExpiryDate:   req.ExpiryDate,
		PassNumber:   f.passNumber(form.Area),
	}
	if kind != pass.OneDay {
		info.PhotoURL = form.PhotoURL
		info.BonafideURL = form.BonafideURL
	}

	if err := sess.SavePassInfo(ctx, info); err != nil {
		return models.ClientPassInfo{}, fmt.Errorf("stash pass info: %w", err)
	}
	metrics.FlowSubmissions.WithLabelValues("booked").Inc()
	return info, nil
}

// BookingRequestFor derives the API request for a form submitted on day today.
func BookingRequestFor(form models.PersonalInfoForm, kind pass.Kind, today time.Time) models.BookingRequest {
	return models.BookingRequest{
		UserName:     form.UserName,
		AadharNumber: form.AadharNumber,
		Address:      form.Address,
		PassID:       kind.ID(),
		BookingDate:  utils.FormatDate(today),
		ExpiryDate:   utils.FormatDate(pass.ExpiryDate(today, string(kind))),
	}
}

func normalizeForm(form models.PersonalInfoForm) models.PersonalInfoForm {
	form.UserName = utils.NormalizeSpace(form.UserName)
	form.AadharNumber = strings.TrimSpace(form.AadharNumber)
	form.Address = strings.TrimSpace(form.Address)
	form.Area = strings.TrimSpace(form.Area)
	form.PhotoURL = strings.TrimSpace(form.PhotoURL)
	form.BonafideURL = strings.TrimSpace(form.BonafideURL)
	return form
}

func submitError(err error) error {
	ne := domain.NetworkError{Msg: msgNetworkFailed, Err: err}
	var apiErr domain.NetworkError
	if errors.As(err, &apiErr) {
		ne.Status = apiErr.Status
	}
	if ne.Status != 0 {
		ne.Msg = msgBookingFailed
	}
	return ne
}
