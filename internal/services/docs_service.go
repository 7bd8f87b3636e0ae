package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
	"buspass/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// DocsService renders the printable pass and the admin bookings export.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	Now       func() time.Time
}

// PassDocument is everything printed on a pass.
type PassDocument struct {
	BookingID   int64
	PassNumber  string
	HolderName  string
	Aadhar      string
	Address     string
	Area        string
	PassID      int
	IssueDate   string
	ExpiryDate  string
	PhotoURL    string
	BonafideURL string
}

// PassDocumentFromInfo builds the document from the session stash.
func PassDocumentFromInfo(info models.ClientPassInfo) PassDocument {
	return PassDocument{
		BookingID:   info.BookingID,
		PassNumber:  info.PassNumber,
		HolderName:  info.UserName,
		Aadhar:      info.AadharNumber,
		Address:     info.Address,
		Area:        info.Area,
		PassID:      info.PassID,
		IssueDate:   info.BookingDate,
		ExpiryDate:  info.ExpiryDate,
		PhotoURL:    info.PhotoURL,
		BonafideURL: info.BonafideURL,
	}
}

// GenerateBookingPass loads a stored booking and renders its pass. Stored bookings carry no
// pass number, so the booking id stands in for it.
func (s DocsService) GenerateBookingPass(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	doc := PassDocument{
		BookingID:  b.BookingID,
		PassNumber: fmt.Sprintf("BK-%06d", b.BookingID),
		HolderName: b.UserName,
		Aadhar:     b.AadharNumber,
		Address:    b.Address,
		PassID:     b.PassID,
		IssueDate:  b.BookingDate,
		ExpiryDate: b.ExpiryDate,
	}
	return s.GeneratePass(doc)
}

func (s DocsService) GeneratePass(d PassDocument) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_pass", fmt.Sprintf("booking_id=%d pass_number=%s", d.BookingID, d.PassNumber))
	return buildPassPDF(d, s.now())
}

// BookingsWorkbook exports bookings to a single-sheet XLSX with the ID number masked.
func (s DocsService) BookingsWorkbook(rows []models.BookingRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	header := []any{"Booking ID", "User Name", "Aadhar Number", "Address", "Pass", "Booking Date", "Expiry Date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, b := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			b.BookingID,
			b.UserName,
			utils.MaskAadhar(b.AadharNumber),
			b.Address,
			passTitle(b.PassID),
			b.BookingDate,
			b.ExpiryDate,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "B", "D", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "docs", "export_bookings", fmt.Sprintf("rows=%d", len(rows)))
	return buf.Bytes(), nil
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func passTitle(passID int) string {
	if p, ok := pass.ByID(passID); ok {
		return p.Title
	}
	return "Pass"
}

func buildPassPDF(d PassDocument, printedAt time.Time) ([]byte, string, error) {
	product, known := pass.ByID(d.PassID)

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("PMPML Bus Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "PMPML BUS PASS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if known {
		pdf.CellFormat(0, 7, product.Title+" ("+product.Duration+")", "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 7, "Pass", "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	price := "-"
	if known {
		price = utils.FormatRupees(product.Price)
	}
	lines := [][2]string{
		{"Pass Number", safe(d.PassNumber, "-")},
		{"Name", safe(d.HolderName, "-")},
		{"Aadhar", utils.MaskAadhar(d.Aadhar)},
		{"Address", safe(d.Address, "-")},
		{"Area", safe(d.Area, "-")},
		{"Type", product.Key.Label()},
		{"Valid From", safe(utils.DisplayDate(d.IssueDate), "-")},
		{"Valid Until", safe(utils.DisplayDate(d.ExpiryDate), "-")},
		{"Amount", price},
	}
	if d.BookingID > 0 {
		lines = append(lines, [2]string{"Booking ID", fmt.Sprintf("#%d", d.BookingID)})
	}
	for _, l := range lines {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 7, l[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, l[1], "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Valid on all regular PMPML buses until the date shown. Carry a photo ID while travelling. Printed "+
		printedAt.Format("02 Jan 2006 15:04")+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PASS_%s.pdf", safeFilenamePart(d.PassNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
