package flow

import (
	"context"
	"fmt"
	"time"

	"buspass/internal/domain"
	"buspass/internal/domain/pass"
	"buspass/internal/session"
	"buspass/internal/utils"
)

// OrderSummary is what the payment step shows before the (simulated) payment.
type OrderSummary struct {
	PassType    pass.Kind `json:"passType"`
	Title       string    `json:"title"`
	Duration    string    `json:"duration"`
	Applicant   string    `json:"applicant"`
	PassNumber  string    `json:"passNumber"`
	BookingID   int64     `json:"bookingId"`
	Amount      int64     `json:"amount"`
	AmountLabel string    `json:"amountLabel"`
}

// Payment reads the stash written by Submit. A missing or unreadable stash is a
// domain.StateMissingError; the caller should send the visitor back to pass selection.
func (f Flow) Payment(ctx context.Context, sess *session.Session) (OrderSummary, error) {
	info, err := sess.LoadPassInfo(ctx)
	if err != nil {
		return OrderSummary{}, err
	}
	product, _ := pass.ByKind(info.PassType)
	return OrderSummary{
		PassType:    info.PassType,
		Title:       product.Title,
		Duration:    product.Duration,
		Applicant:   info.UserName,
		PassNumber:  info.PassNumber,
		BookingID:   info.BookingID,
		Amount:      product.Price,
		AmountLabel: utils.FormatRupees(product.Price),
	}, nil
}

// CompletePayment waits out the simulated processing delay once, records a payment
// reference on the stash and moves on to the generated pass.
func (f Flow) CompletePayment(ctx context.Context, sess *session.Session) (Step, error) {
	info, err := sess.LoadPassInfo(ctx)
	if err != nil {
		return StepSelectPass, err
	}

	if f.PaymentDelay > 0 {
		timer := time.NewTimer(f.PaymentDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return StepPayment, ctx.Err()
		}
	}

	if info.PaymentRef == "" {
		info.PaymentRef = fmt.Sprintf("PAY-%d", f.now().UnixNano())
	}
	if err := sess.SavePassInfo(ctx, info); err != nil {
		return StepPayment, fmt.Errorf("stash payment reference: %w", err)
	}
	return StepPassGenerated, nil
}

// IsRestart reports whether err should send the visitor back to pass selection.
func IsRestart(err error) bool {
	return domain.IsStateMissing(err)
}
