package gateway

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

type reportDTO struct {
	TotalClientes     int     `json:"total_clientes"`
	TotalFornecedores int     `json:"total_fornecedores"`
	TotalProdutos     int     `json:"total_produtos"`
	TotalUsuarios     int     `json:"total_usuarios"`
	TotalVendas       int     `json:"total_vendas"`
	ReceitaVendas     float64 `json:"receita_vendas"`
	EstoqueBaixo      int     `json:"estoque_baixo"`
}

// ReportGateway fetches the aggregate the reporting dashboard renders
type ReportGateway struct {
	client *Client
}

// NewReportGateway creates a new report gateway
func NewReportGateway(client *Client) *ReportGateway {
	return &ReportGateway{client: client}
}

// General fetches the backend-computed general report
func (g *ReportGateway) General(ctx context.Context) (entity.GeneralReport, error) {
	var dto reportDTO
	if err := g.client.Get(ctx, "/reports/relatorio_geral/", &dto); err != nil {
		return entity.GeneralReport{}, err
	}
	return entity.GeneralReport{
		TotalCustomers: dto.TotalClientes,
		TotalSuppliers: dto.TotalFornecedores,
		TotalProducts:  dto.TotalProdutos,
		TotalStaff:     dto.TotalUsuarios,
		TotalSales:     dto.TotalVendas,
		SalesRevenue:   decimal.NewFromFloat(dto.ReceitaVendas),
		LowStockItems:  dto.EstoqueBaixo,
	}, nil
}
