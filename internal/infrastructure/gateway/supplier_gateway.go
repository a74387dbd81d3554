package gateway

import (
	"context"
	"fmt"

	"github.com/vendify/salesflow-web/internal/domain/entity"
)

type supplierDTO struct {
	ID                int    `json:"id,omitempty"`
	Nome              string `json:"nome"`
	CNPJ              string `json:"cnpj"`
	Email             string `json:"email"`
	Celular           string `json:"celular"`
	Telefone          string `json:"telefone"`
	NomeContato       string `json:"nome_contato"`
	EmailSecundario   string `json:"email_secundario"`
	TelefoneSecundario string `json:"telefone_secundario"`
	CEP               string `json:"cep"`
	Rua               string `json:"rua"`
	Numero            string `json:"numero"`
	Bairro            string `json:"bairro"`
	Cidade            string `json:"cidade"`
	UF                string `json:"uf"`
	Complemento       string `json:"complemento"`
}

func (d supplierDTO) toEntity() entity.Supplier {
	return entity.Supplier{
		ID:             d.ID,
		Name:           d.Nome,
		TaxID:          d.CNPJ,
		Email:          d.Email,
		Mobile:         d.Celular,
		Landline:       d.Telefone,
		ContactName:    d.NomeContato,
		SecondaryEmail: d.EmailSecundario,
		SecondaryPhone: d.TelefoneSecundario,
		Address: entity.Address{
			PostalCode: d.CEP,
			Street:     d.Rua,
			Number:     d.Numero,
			District:   d.Bairro,
			City:       d.Cidade,
			Region:     d.UF,
			Complement: d.Complemento,
		},
	}
}

func supplierToDTO(s entity.Supplier) supplierDTO {
	return supplierDTO{
		ID:                 s.ID,
		Nome:               s.Name,
		CNPJ:               s.TaxID,
		Email:              s.Email,
		Celular:            s.Mobile,
		Telefone:           s.Landline,
		NomeContato:        s.ContactName,
		EmailSecundario:    s.SecondaryEmail,
		TelefoneSecundario: s.SecondaryPhone,
		CEP:                s.Address.PostalCode,
		Rua:                s.Address.Street,
		Numero:             s.Address.Number,
		Bairro:             s.Address.District,
		Cidade:             s.Address.City,
		UF:                 s.Address.Region,
		Complemento:        s.Address.Complement,
	}
}

// SupplierGateway issues supplier CRUD requests against the sales API
type SupplierGateway struct {
	client *Client
}

// NewSupplierGateway creates a new supplier gateway
func NewSupplierGateway(client *Client) *SupplierGateway {
	return &SupplierGateway{client: client}
}

// List fetches the whole collection
func (g *SupplierGateway) List(ctx context.Context) ([]entity.Supplier, error) {
	dtos, err := getCollection[supplierDTO](ctx, g.client, "/fornecedores/")
	if err != nil {
		return nil, err
	}
	suppliers := make([]entity.Supplier, 0, len(dtos))
	for _, d := range dtos {
		suppliers = append(suppliers, d.toEntity())
	}
	return suppliers, nil
}

// Get fetches one supplier by id
func (g *SupplierGateway) Get(ctx context.Context, id int) (entity.Supplier, error) {
	var dto supplierDTO
	if err := g.client.Get(ctx, fmt.Sprintf("/fornecedores/%d/", id), &dto); err != nil {
		return entity.Supplier{}, err
	}
	return dto.toEntity(), nil
}

// Create posts a new supplier record
func (g *SupplierGateway) Create(ctx context.Context, s entity.Supplier) (entity.Supplier, error) {
	dto := supplierToDTO(s)
	dto.ID = 0
	var created supplierDTO
	if err := g.client.Post(ctx, "/fornecedores/", dto, &created); err != nil {
		return entity.Supplier{}, err
	}
	return created.toEntity(), nil
}

// Update puts the full record over the existing one
func (g *SupplierGateway) Update(ctx context.Context, s entity.Supplier) (entity.Supplier, error) {
	var updated supplierDTO
	if err := g.client.Put(ctx, fmt.Sprintf("/fornecedores/%d/", s.ID), supplierToDTO(s), &updated); err != nil {
		return entity.Supplier{}, err
	}
	return updated.toEntity(), nil
}

// Delete removes a supplier by id
func (g *SupplierGateway) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/fornecedores/%d/", id))
}
