package gateway

import (
	"context"
	"fmt"

	"github.com/vendify/salesflow-web/internal/domain/entity"
	"github.com/vendify/salesflow-web/internal/domain/enum"
)

// staffDTO is the wire shape of an operator account. Senha is write-only:
// the backend never echoes it back, and omitempty keeps a blank password
// out of update payloads so the stored credential survives edits.
type staffDTO struct {
	ID          int    `json:"id,omitempty"`
	Nome        string `json:"nome"`
	CPF         string `json:"cpf"`
	RG          string `json:"rg"`
	Email       string `json:"email"`
	Celular     string `json:"celular"`
	Telefone    string `json:"telefone"`
	Funcao      string `json:"funcao"`
	NivelAcesso string `json:"nivel_acesso"`
	Senha       string `json:"senha,omitempty"`
	CEP         string `json:"cep"`
	Rua         string `json:"rua"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	Complemento string `json:"complemento"`
}

func (d staffDTO) toEntity() entity.Staff {
	return entity.Staff{
		ID:          d.ID,
		Name:        d.Nome,
		NationalID:  d.CPF,
		DocumentID:  d.RG,
		Email:       d.Email,
		Mobile:      d.Celular,
		Landline:    d.Telefone,
		Role:        d.Funcao,
		AccessLevel: enum.AccessLevel(d.NivelAcesso).Normalize(),
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

func staffToDTO(s entity.Staff) staffDTO {
	return staffDTO{
		ID:          s.ID,
		Nome:        s.Name,
		CPF:         s.NationalID,
		RG:          s.DocumentID,
		Email:       s.Email,
		Celular:     s.Mobile,
		Telefone:    s.Landline,
		Funcao:      s.Role,
		NivelAcesso: s.AccessLevel.String(),
		Senha:       s.Password,
		CEP:         s.Address.PostalCode,
		Rua:         s.Address.Street,
		Numero:      s.Address.Number,
		Bairro:      s.Address.District,
		Cidade:      s.Address.City,
		UF:          s.Address.Region,
		Complemento: s.Address.Complement,
	}
}

// StaffGateway issues staff CRUD requests against the sales API
type StaffGateway struct {
	client *Client
}

// NewStaffGateway creates a new staff gateway
func NewStaffGateway(client *Client) *StaffGateway {
	return &StaffGateway{client: client}
}

// List fetches the whole collection
func (g *StaffGateway) List(ctx context.Context) ([]entity.Staff, error) {
	dtos, err := getCollection[staffDTO](ctx, g.client, "/usuarios/")
	if err != nil {
		return nil, err
	}
	staff := make([]entity.Staff, 0, len(dtos))
	for _, d := range dtos {
		staff = append(staff, d.toEntity())
	}
	return staff, nil
}

// Get fetches one account by id; the credential comes back blank
func (g *StaffGateway) Get(ctx context.Context, id int) (entity.Staff, error) {
	var dto staffDTO
	if err := g.client.Get(ctx, fmt.Sprintf("/usuarios/%d/", id), &dto); err != nil {
		return entity.Staff{}, err
	}
	return dto.toEntity(), nil
}

// Create posts a new account
func (g *StaffGateway) Create(ctx context.Context, s entity.Staff) (entity.Staff, error) {
	dto := staffToDTO(s)
	dto.ID = 0
	var created staffDTO
	if err := g.client.Post(ctx, "/usuarios/", dto, &created); err != nil {
		return entity.Staff{}, err
	}
	return created.toEntity(), nil
}

// Update puts the full record; a blank password keeps the stored one
func (g *StaffGateway) Update(ctx context.Context, s entity.Staff) (entity.Staff, error) {
	var updated staffDTO
	if err := g.client.Put(ctx, fmt.Sprintf("/usuarios/%d/", s.ID), staffToDTO(s), &updated); err != nil {
		return entity.Staff{}, err
	}
	return updated.toEntity(), nil
}

// Delete removes an account by id
func (g *StaffGateway) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/usuarios/%d/", id))
}
