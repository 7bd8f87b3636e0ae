package flow

import (
	"context"

	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
	"buspass/internal/session"
	"buspass/internal/utils"
)

// PassView is the generated pass as displayed to its holder.
type PassView struct {
	PassNumber  string    `json:"passNumber"`
	HolderName  string    `json:"holderName"`
	Aadhar      string    `json:"aadhar"`
	Address     string    `json:"address"`
	Area        string    `json:"area"`
	PassType    pass.Kind `json:"passType"`
	Label       string    `json:"label"`
	Title       string    `json:"title"`
	Duration    string    `json:"duration"`
	IssueDate   string    `json:"issueDate"`
	ExpiryDate  string    `json:"expiryDate"`
	Price       int64     `json:"price"`
	PriceLabel  string    `json:"priceLabel"`
	BookingID   int64     `json:"bookingId"`
	PaymentRef  string    `json:"paymentRef,omitempty"`
	HasPhoto    bool      `json:"hasPhoto"`
	HasBonafide bool      `json:"hasBonafide"`
}

// Generated reads the stash and renders it. Same StateMissingError contract as Payment.
func (f Flow) Generated(ctx context.Context, sess *session.Session) (PassView, models.ClientPassInfo, error) {
	info, err := sess.LoadPassInfo(ctx)
	if err != nil {
		return PassView{}, info, err
	}
	product, _ := pass.ByKind(info.PassType)
	return PassView{
		PassNumber:  info.PassNumber,
		HolderName:  info.UserName,
		Aadhar:      utils.MaskAadhar(info.AadharNumber),
		Address:     info.Address,
		Area:        info.Area,
		PassType:    info.PassType,
		Label:       info.PassType.Label(),
		Title:       product.Title,
		Duration:    product.Duration,
		IssueDate:   utils.DisplayDate(info.BookingDate),
		ExpiryDate:  utils.DisplayDate(info.ExpiryDate),
		Price:       product.Price,
		PriceLabel:  utils.FormatRupees(product.Price),
		BookingID:   info.BookingID,
		PaymentRef:  info.PaymentRef,
		HasPhoto:    info.PhotoURL != "",
		HasBonafide: info.BonafideURL != "",
	}, info, nil
}

// Restart clears the stash so a stale pass cannot leak into the next application.
func (f Flow) Restart(ctx context.Context, sess *session.Session) error {
	return sess.Clear(ctx)
}
