package booking

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// BuildReceiptPDF renders a one-page booking confirmation receipt.
func BuildReceiptPDF(b *Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booking ID: %s", b.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, label, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "B", 1, "L", false, 0, "")
	}

	row("Customer", b.UserName)
	row("Venue", b.VenueName)
	if b.VenueAddress != "" {
		row("Address", fmt.Sprintf("%s, %s", b.VenueAddress, b.VenueCity))
	}
	row("Court", b.CourtName)
	row("Date", b.Date)
	row("Time", fmt.Sprintf("%s - %s", b.StartTime, b.EndTime))
	row("Duration", fmt.Sprintf("%d hour(s)", b.DurationHours))
	row("Status", string(b.EffectiveStatus(time.Now())))
	if b.Notes != nil && *b.Notes != "" {
		row("Notes", *b.Notes)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(50, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("$%.2f", b.TotalPrice), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf failed: %w", err)
	}
	return buf.Bytes(), nil
}
