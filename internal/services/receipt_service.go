package services

import (
	"bytes"
	"fmt"
	"strings"

	"cabbooking/internal/domain/models"
	"cabbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders booking confirmations for the console and as PDF downloads.
type ReceiptService struct {
	RequestID string
}

func receiptLines(b models.Booking) []string {
	return []string{
		"Customer ID: " + utils.Safe(b.CustomerID, "-"),
		"Customer Name: " + utils.Safe(b.CustomerName, "-"),
		"Cab ID: " + utils.Safe(b.CabID, "-"),
		"Pickup Location: " + utils.Safe(b.PickupLocation, "-"),
		"Drop Location: " + utils.Safe(b.DropLocation, "-"),
		"Distance: " + utils.FormatDistance(b.Distance),
		"Fare: " + utils.FormatMoney(b.Fare),
	}
}

func (s ReceiptService) Text(b models.Booking) string {
	return "Booking Details:\n" + strings.Join(receiptLines(b), "\n")
}

// PDF returns the receipt document and a download filename.
func (s ReceiptService) PDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	// Core fonts are cp1252; names and locations arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range pdfLines(tr, b) {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Fare is computed at %s per km for the booked cab category.",
		utils.FormatMoney(b.Fare/nonZero(b.Distance))), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "receipt", "generate_pdf", "customer_id="+b.CustomerID)
	filename := fmt.Sprintf("RECEIPT_%s.pdf", utils.SafeFilenamePart(b.CustomerID))
	return buf.Bytes(), filename, nil
}

func pdfLines(tr func(string) string, b models.Booking) []string {
	lines := receiptLines(b)
	for i, l := range lines {
		lines[i] = tr(l)
	}
	return lines
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
