package request

import (
	"github.com/vendify/salesflow-web/internal/domain/entity"
	"github.com/vendify/salesflow-web/pkg/numfmt"
)

// ProductForm is the product draft record. Price and discount are
// free-text so the operator can type a decimal comma; the central parser
// normalizes them and coerces invalid input to zero.
type ProductForm struct {
	Description string `form:"description"`
	UnitPrice   string `form:"unit_price"`
	Stock       string `form:"stock"`
	Discount    string `form:"discount"`
	Barcode     string `form:"barcode"`
	Active      string `form:"active"`
}

// ToEntity maps the draft into the domain record
func (f ProductForm) ToEntity(id int) entity.Product {
	return entity.Product{
		ID:          id,
		Description: f.Description,
		UnitPrice:   numfmt.ParseDecimal(f.UnitPrice),
		Stock:       numfmt.ParseInt(f.Stock),
		Discount:    numfmt.ParseDecimal(f.Discount),
		Barcode:     f.Barcode,
		Active:      f.Active == "on" || f.Active == "true",
	}
}

// ProductFormFromEntity pre-fills the draft for the edit variant
func ProductFormFromEntity(p entity.Product) ProductForm {
	active := ""
	if p.Active {
		active = "on"
	}
	return ProductForm{
		Description: p.Description,
		UnitPrice:   numfmt.FormatMoney(p.UnitPrice),
		Stock:       numfmt.FormatInt(p.Stock),
		Discount:    numfmt.FormatMoney(p.Discount),
		Barcode:     p.Barcode,
		Active:      active,
	}
}
