package request

import (
	"github.com/vendify/salesflow-web/internal/domain/entity"
	"github.com/vendify/salesflow-web/internal/domain/enum"
)

// StaffForm is the operator-account draft record. Password stays blank on
// edit because the backend never returns the stored credential.
type StaffForm struct {
	Name        string `form:"name"`
	NationalID  string `form:"national_id"`
	DocumentID  string `form:"document_id"`
	Email       string `form:"email"`
	Mobile      string `form:"mobile"`
	Landline    string `form:"landline"`
	Role        string `form:"role"`
	AccessLevel string `form:"access_level"`
	Password    string `form:"password"`
	PostalCode  string `form:"postal_code"`
	Street      string `form:"street"`
	Number      string `form:"number"`
	District    string `form:"district"`
	City        string `form:"city"`
	Region      string `form:"region"`
	Complement  string `form:"complement"`
}

// ToEntity maps the draft into the domain record
func (f StaffForm) ToEntity(id int) entity.Staff {
	return entity.Staff{
		ID:          id,
		Name:        f.Name,
		NationalID:  f.NationalID,
		DocumentID:  f.DocumentID,
		Email:       f.Email,
		Mobile:      f.Mobile,
		Landline:    f.Landline,
		Role:        f.Role,
		AccessLevel: enum.AccessLevel(f.AccessLevel).Normalize(),
		Password:    f.Password,
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

// StaffFormFromEntity pre-fills the draft for the edit variant
func StaffFormFromEntity(s entity.Staff) StaffForm {
	return StaffForm{
		Name:        s.Name,
		NationalID:  s.NationalID,
		DocumentID:  s.DocumentID,
		Email:       s.Email,
		Mobile:      s.Mobile,
		Landline:    s.Landline,
		Role:        s.Role,
		AccessLevel: s.AccessLevel.String(),
		PostalCode:  s.Address.PostalCode,
		Street:      s.Address.Street,
		Number:      s.Address.Number,
		District:    s.Address.District,
		City:        s.Address.City,
		Region:      s.Address.Region,
		Complement:  s.Address.Complement,
	}
}
