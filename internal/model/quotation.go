package model

type Quotation struct {
	ID              int    `json:"id"`
	Customer        string `json:"customer"`
	QuotationNumber string `json:"quotationNumber"`
	EmailID         string `json:"emailId"`
	DateTime        string `json:"dateTime"`
	Details         string `json:"details"`
}
