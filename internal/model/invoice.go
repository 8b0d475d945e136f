package model

// Invoice is the persisted billing record. The id is assigned by the store
// on creation; every other field is a free-form string supplied by the caller.
type Invoice struct {
	ID            int    `json:"id"`
	Customer      string `json:"customer"`
	InvoiceNumber string `json:"invoiceNumber"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	EmailID       string `json:"emailId"`
	GstinNumber   string `json:"gstinNumber"`
	DateTime      string `json:"dateTime"`
	VenueDetails  string `json:"venueDetails"`
}
