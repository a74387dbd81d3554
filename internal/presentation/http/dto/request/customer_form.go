// Package request holds the typed draft records the form screens bind
// into. Each form is a closed set of fields, so a typo in a field name is
// a compile error instead of a silently ignored input.
package request

import (
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

// CustomerForm is the customer draft record
type CustomerForm struct {
	Name       string `form:"name"`
	NationalID string `form:"national_id"`
	DocumentID string `form:"document_id"`
	Email      string `form:"email"`
	Mobile     string `form:"mobile"`
	Landline   string `form:"landline"`
	PostalCode string `form:"postal_code"`
	Street     string `form:"street"`
	Number     string `form:"number"`
	District   string `form:"district"`
	City       string `form:"city"`
	Region     string `form:"region"`
	Complement string `form:"complement"`
}

// ToEntity maps the draft into the domain record
func (f CustomerForm) ToEntity(id int) entity.Customer {
	return entity.Customer{
		ID:         id,
		Name:       f.Name,
		NationalID: f.NationalID,
		DocumentID: f.DocumentID,
		Email:      f.Email,
		Mobile:     f.Mobile,
		Landline:   f.Landline,
		Address: entity.Address{
			PostalCode: f.PostalCode,
			Street:     f.Street,
			Number:     f.Number,
			District:   f.District,
			City:       f.City,
			Region:     f.Region,
			Complement: f.Complement,
		},
	}
}

// CustomerFormFromEntity pre-fills the draft for the edit variant
func CustomerFormFromEntity(c entity.Customer) CustomerForm {
	return CustomerForm{
		Name:       c.Name,
		NationalID: c.NationalID,
		DocumentID: c.DocumentID,
		Email:      c.Email,
		Mobile:     c.Mobile,
		Landline:   c.Landline,
		PostalCode: c.Address.PostalCode,
		Street:     c.Address.Street,
		Number:     c.Address.Number,
		District:   c.Address.District,
		City:       c.Address.City,
		Region:     c.Address.Region,
		Complement: c.Address.Complement,
	}
}
