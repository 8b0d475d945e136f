package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbill/internal/model"
)

func TestRenderListsEveryField(t *testing.T) {
	inv := model.Invoice{
		ID:            7,
		Customer:      "Acme",
		InvoiceNumber: "INV-1",
		PhoneNumber:   "555-0100",
		Address:       "1 Main St",
		EmailID:       "a@x.com",
		GstinNumber:   "GST1",
		DateTime:      "2024-01-01T10:00",
		VenueDetails:  "Hall A",
	}

	out, err := NewRenderer().Render(inv)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	for _, line := range []string{
		"Invoice ID: 7",
		"Customer Name: Acme",
		"Invoice Number: INV-1",
		"Phone Number: 555-0100",
		"Address: 1 Main St",
		"Email: a@x.com",
		"GST Number: GST1",
		"Date and Time: 2024-01-01T10:00",
		"Venue Details: Hall A",
	} {
		assert.True(t, bytes.Contains(out, []byte(line)), "pdf should contain %q", line)
	}
}

func TestRenderEmptyInvoice(t *testing.T) {
	out, err := NewRenderer().Render(model.Invoice{})
	require.NoError(t, err)
	assert.True(t, bytes.Contains(out, []byte("Invoice ID: 0")))
}
