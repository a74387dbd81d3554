package entity

import "github.com/vendify/salesflow-web/internal/domain/enum"

// Staff is an operator account. Password is write-only: the backend never
// returns it, so an edit fetch leaves it blank and a blank password on
// update means "keep the current one".
type Staff struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	NationalID  string           `json:"national_id"` // CPF
	DocumentID  string           `json:"document_id"` // RG
	Email       string           `json:"email"`
	Mobile      string           `json:"mobile"`
	Landline    string           `json:"landline"`
	Role        string           `json:"role"`
	AccessLevel enum.AccessLevel `json:"access_level"`
	Password    string           `json:"-"`
	Address     Address          `json:"address"`
}
