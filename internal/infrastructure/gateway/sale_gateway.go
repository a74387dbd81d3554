package gateway

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

type saleItemDTO struct {
	CodigoProduto string  `json:"codigo_produto"`
	NomeProduto   string  `json:"nome_produto"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Quantidade    float64 `json:"quantidade"`
	Subtotal      float64 `json:"subtotal"`
}

type saleDTO struct {
	ID          int           `json:"id,omitempty"`
	Referencia  string        `json:"referencia"`
	ClienteID   string        `json:"cliente_id"`
	ClienteNome string        `json:"cliente_nome"`
	Itens       []saleItemDTO `json:"itens"`
	Total       float64       `json:"total"`
	Dinheiro    float64       `json:"dinheiro"`
	Cartao      float64       `json:"cartao"`
	Cheque      float64       `json:"cheque"`
	Troco       float64       `json:"troco"`
}

func saleToDTO(s entity.Sale) saleDTO {
	items := make([]saleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, saleItemDTO{
			CodigoProduto: it.ProductCode,
			NomeProduto:   it.ProductName,
			PrecoUnitario: it.UnitPrice.InexactFloat64(),
			Quantidade:    it.Quantity.InexactFloat64(),
			Subtotal:      it.Subtotal.InexactFloat64(),
		})
	}
	return saleDTO{
		Referencia:  s.Reference,
		ClienteID:   s.CustomerID,
		ClienteNome: s.CustomerName,
		Itens:       items,
		Total:       s.Total.InexactFloat64(),
		Dinheiro:    s.TenderedCash.InexactFloat64(),
		Cartao:      s.TenderedCard.InexactFloat64(),
		Cheque:      s.TenderedCheck.InexactFloat64(),
		Troco:       s.Change.InexactFloat64(),
	}
}

// SaleGateway persists finalized sales. The original front end dropped a
// completed sale on the floor; here nothing is confirmed to the operator
// until this call succeeds.
type SaleGateway struct {
	client *Client
}

// NewSaleGateway creates a new sale gateway
func NewSaleGateway(client *Client) *SaleGateway {
	return &SaleGateway{client: client}
}

// Create posts the completed sale and returns the id the backend assigned
func (g *SaleGateway) Create(ctx context.Context, s entity.Sale) (entity.Sale, error) {
	var created saleDTO
	if err := g.client.Post(ctx, "/vendas/", saleToDTO(s), &created); err != nil {
		return entity.Sale{}, err
	}
	s.ID = created.ID
	if created.Total != 0 {
		s.Total = decimal.NewFromFloat(created.Total)
	}
	return s, nil
}
