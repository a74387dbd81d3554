package gateway

import (
	"context"
	"fmt"

	"github.com/vendify/salesflow-web/internal/domain/entity"
)

// customerDTO is the wire shape of a customer. The backend keeps its
// original Portuguese field names, so the UI↔API renaming lives here and
// nowhere else.
type customerDTO struct {
	ID         int    `json:"id,omitempty"`
	Nome       string `json:"nome"`
	CPF        string `json:"cpf"`
	RG         string `json:"rg"`
	Email      string `json:"email"`
	Celular    string `json:"celular"`
	Telefone   string `json:"telefone"`
	CEP        string `json:"cep"`
	Rua        string `json:"rua"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
	Complemento string `json:"complemento"`
}

func (d customerDTO) toEntity() entity.Customer {
	return entity.Customer{
		ID:         d.ID,
		Name:       d.Nome,
		NationalID: d.CPF,
		DocumentID: d.RG,
		Email:      d.Email,
		Mobile:     d.Celular,
		Landline:   d.Telefone,
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

func customerToDTO(c entity.Customer) customerDTO {
	return customerDTO{
		ID:          c.ID,
		Nome:        c.Name,
		CPF:         c.NationalID,
		RG:          c.DocumentID,
		Email:       c.Email,
		Celular:     c.Mobile,
		Telefone:    c.Landline,
		CEP:         c.Address.PostalCode,
		Rua:         c.Address.Street,
		Numero:      c.Address.Number,
		Bairro:      c.Address.District,
		Cidade:      c.Address.City,
		UF:          c.Address.Region,
		Complemento: c.Address.Complement,
	}
}

// CustomerGateway issues customer CRUD requests against the sales API
type CustomerGateway struct {
	client *Client
}

// NewCustomerGateway creates a new customer gateway
func NewCustomerGateway(client *Client) *CustomerGateway {
	return &CustomerGateway{client: client}
}

// List fetches the whole collection; the backend does no filtering
func (g *CustomerGateway) List(ctx context.Context) ([]entity.Customer, error) {
	dtos, err := getCollection[customerDTO](ctx, g.client, "/clientes/")
	if err != nil {
		return nil, err
	}
	customers := make([]entity.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, d.toEntity())
	}
	return customers, nil
}

// Get fetches one customer by id
func (g *CustomerGateway) Get(ctx context.Context, id int) (entity.Customer, error) {
	var dto customerDTO
	if err := g.client.Get(ctx, fmt.Sprintf("/clientes/%d/", id), &dto); err != nil {
		return entity.Customer{}, err
	}
	return dto.toEntity(), nil
}

// Create posts a new customer record
func (g *CustomerGateway) Create(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	dto := customerToDTO(c)
	dto.ID = 0
	var created customerDTO
	if err := g.client.Post(ctx, "/clientes/", dto, &created); err != nil {
		return entity.Customer{}, err
	}
	return created.toEntity(), nil
}

// Update puts the full record over the existing one
func (g *CustomerGateway) Update(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	var updated customerDTO
	if err := g.client.Put(ctx, fmt.Sprintf("/clientes/%d/", c.ID), customerToDTO(c), &updated); err != nil {
		return entity.Customer{}, err
	}
	return updated.toEntity(), nil
}

// Delete removes a customer by id
func (g *CustomerGateway) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/clientes/%d/", id))
}
