package entity

// Customer is a transient copy of a customer record owned by the sales
// API. The screens fetch it on mount and never cache it across
// navigations.
type Customer struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	NationalID string  `json:"national_id"` // CPF
	DocumentID string  `json:"document_id"` // RG
	Email      string  `json:"email"`
	Mobile     string  `json:"mobile"`
	Landline   string  `json:"landline"`
	Address    Address `json:"address"`
}
