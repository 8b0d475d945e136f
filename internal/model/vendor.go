package model

type Vendor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	EmailID     string `json:"emailId"`
	Address     string `json:"address"`
	Service     string `json:"service"`
}
