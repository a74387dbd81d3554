package entity

// Address is the structured postal address shared by customers, suppliers
// and staff. Region holds the two-letter state code the lookup service
// returns.
type Address struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	Region     string `json:"region"`
	Complement string `json:"complement"`
}
