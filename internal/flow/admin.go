package flow

import (
	"context"

	"buspass/internal/domain/pass"
	"buspass/internal/utils"
)

const msgAdminLoadFailed = "Failed to load booking data. Please try again later."

type AdminRow struct {
	BookingID   int64  `json:"bookingId"`
	UserName    string `json:"userName"`
	Aadhar      string `json:"aadhar"`
	Address     string `json:"address"`
	PassID      int    `json:"passId"`
	PassLabel   string `json:"passLabel"`
	BookingDate string `json:"bookingDate"`
	ExpiryDate  string `json:"expiryDate"`
}

// AdminView is the bookings table. Notice is set, and Rows empty, when loading failed.
type AdminView struct {
	Rows   []AdminRow `json:"rows"`
	Notice string     `json:"notice,omitempty"`
}

// Admin lists every booking with the ID number masked. It never fails; a fetch error
// becomes a notice over an empty table.
func (f Flow) Admin(ctx context.Context) AdminView {
	view := AdminView{Rows: []AdminRow{}}

	bookings, err := f.API.ListBookings(ctx)
	if err != nil {
		utils.LogEvent("", "admin", "list_bookings_failed", err.Error())
		view.Notice = msgAdminLoadFailed
		return view
	}

	for _, b := range bookings {
		label := "Pass"
		if p, ok := pass.ByID(b.PassID); ok {
			label = p.Label
		}
		view.Rows = append(view.Rows, AdminRow{
			BookingID:   b.BookingID,
			UserName:    b.UserName,
			Aadhar:      utils.MaskAadhar(b.AadharNumber),
			Address:     b.Address,
			PassID:      b.PassID,
			PassLabel:   label,
			BookingDate: utils.DisplayDate(b.BookingDate),
			ExpiryDate:  utils.DisplayDate(b.ExpiryDate),
		})
	}
	return view
}
