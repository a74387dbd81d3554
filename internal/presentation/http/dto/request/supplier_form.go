package request

import (
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

// SupplierForm is the supplier draft record
type SupplierForm struct {
	Name           string `form:"name"`
	TaxID          string `form:"tax_id"`
	Email          string `form:"email"`
	Mobile         string `form:"mobile"`
	Landline       string `form:"landline"`
	ContactName    string `form:"contact_name"`
	SecondaryEmail string `form:"secondary_email"`
	SecondaryPhone string `form:"secondary_phone"`
	PostalCode     string `form:"postal_code"`
	Street         string `form:"street"`
	Number         string `form:"number"`
	District       string `form:"district"`
	City           string `form:"city"`
	Region         string `form:"region"`
	Complement     string `form:"complement"`
}

// ToEntity maps the draft into the domain record
func (f SupplierForm) ToEntity(id int) entity.Supplier {
	return entity.Supplier{
		ID:             id,
		Name:           f.Name,
		TaxID:          f.TaxID,
		Email:          f.Email,
		Mobile:         f.Mobile,
		Landline:       f.Landline,
		ContactName:    f.ContactName,
		SecondaryEmail: f.SecondaryEmail,
		SecondaryPhone: f.SecondaryPhone,
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

// SupplierFormFromEntity pre-fills the draft for the edit variant
func SupplierFormFromEntity(s entity.Supplier) SupplierForm {
	return SupplierForm{
		Name:           s.Name,
		TaxID:          s.TaxID,
		Email:          s.Email,
		Mobile:         s.Mobile,
		Landline:       s.Landline,
		ContactName:    s.ContactName,
		SecondaryEmail: s.SecondaryEmail,
		SecondaryPhone: s.SecondaryPhone,
		PostalCode:     s.Address.PostalCode,
		Street:         s.Address.Street,
		Number:         s.Address.Number,
		District:       s.Address.District,
		City:           s.Address.City,
		Region:         s.Address.Region,
		Complement:     s.Address.Complement,
	}
}
