package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

// productDTO uses float64 on the wire because the backend serializes
// prices as plain JSON numbers; the domain side converts to decimals
// immediately.
type productDTO struct {
	ID               int     `json:"id,omitempty"`
	Descricao        string  `json:"descricao"`
	Preco            float64 `json:"preco"`
	Estoque          int     `json:"estoque"`
	Desconto         float64 `json:"desconto"`
	CodigoBarra      string  `json:"codigo_barra"`
	Ativo            bool    `json:"ativo"`
	PrecoComDesconto float64 `json:"preco_com_desconto,omitempty"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:              d.ID,
		Description:     d.Descricao,
		UnitPrice:       decimal.NewFromFloat(d.Preco),
		Stock:           d.Estoque,
		Discount:        decimal.NewFromFloat(d.Desconto),
		Barcode:         d.CodigoBarra,
		Active:          d.Ativo,
		DiscountedPrice: decimal.NewFromFloat(d.PrecoComDesconto),
	}
}

// productToDTO omits the discounted price: the backend computes it and
// ignores whatever a client would send.
func productToDTO(p entity.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Descricao:   p.Description,
		Preco:       p.UnitPrice.InexactFloat64(),
		Estoque:     p.Stock,
		Desconto:    p.Discount.InexactFloat64(),
		CodigoBarra: p.Barcode,
		Ativo:       p.Active,
	}
}

// ProductGateway issues product CRUD requests against the sales API
type ProductGateway struct {
	client *Client
}

// NewProductGateway creates a new product gateway
func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

// List fetches the whole collection
func (g *ProductGateway) List(ctx context.Context) ([]entity.Product, error) {
	dtos, err := getCollection[productDTO](ctx, g.client, "/produtos/")
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, d.toEntity())
	}
	return products, nil
}

// Get fetches one product by id
func (g *ProductGateway) Get(ctx context.Context, id int) (entity.Product, error) {
	var dto productDTO
	if err := g.client.Get(ctx, fmt.Sprintf("/produtos/%d/", id), &dto); err != nil {
		return entity.Product{}, err
	}
	return dto.toEntity(), nil
}

// Create posts a new product record
func (g *ProductGateway) Create(ctx context.Context, p entity.Product) (entity.Product, error) {
	dto := productToDTO(p)
	dto.ID = 0
	var created productDTO
	if err := g.client.Post(ctx, "/produtos/", dto, &created); err != nil {
		return entity.Product{}, err
	}
	return created.toEntity(), nil
}

// Update puts the full record over the existing one
func (g *ProductGateway) Update(ctx context.Context, p entity.Product) (entity.Product, error) {
	var updated productDTO
	if err := g.client.Put(ctx, fmt.Sprintf("/produtos/%d/", p.ID), productToDTO(p), &updated); err != nil {
		return entity.Product{}, err
	}
	return updated.toEntity(), nil
}

// Delete removes a product by id
func (g *ProductGateway) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/produtos/%d/", id))
}
