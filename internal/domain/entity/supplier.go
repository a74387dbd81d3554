package entity

// Supplier mirrors Customer but is keyed by the business tax id (CNPJ)
// and carries optional secondary contact fields.
type Supplier struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	TaxID          string  `json:"tax_id"` // CNPJ
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	Landline       string  `json:"landline"`
	ContactName    string  `json:"contact_name"`
	SecondaryEmail string  `json:"secondary_email"`
	SecondaryPhone string  `json:"secondary_phone"`
	Address        Address `json:"address"`
}
