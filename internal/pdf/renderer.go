package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"eventbill/internal/model"
)

// Renderer turns an invoice into a single-page PDF listing every field as
// one labeled line. Compression is off so the content stream stays
// byte-inspectable.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(inv model.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(40, 10, "Invoice Details")
	doc.Ln(12)

	doc.SetFont("Arial", "", 12)
	lines := []string{
		"Invoice ID: " + strconv.Itoa(inv.ID),
		"Customer Name: " + inv.Customer,
		"Invoice Number: " + inv.InvoiceNumber,
		"Phone Number: " + inv.PhoneNumber,
		"Address: " + inv.Address,
		"Email: " + inv.EmailID,
		"GST Number: " + inv.GstinNumber,
		"Date and Time: " + inv.DateTime,
		"Venue Details: " + inv.VenueDetails,
	}
	for _, line := range lines {
		doc.Cell(40, 8, line)
		doc.Ln(8)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %d: %w", inv.ID, err)
	}

	return buf.Bytes(), nil
}
