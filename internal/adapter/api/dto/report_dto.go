package dto

import (
	"github.com/brunovales/erp-assistencia/internal/domain/report"
	"github.com/shopspring/decimal"
)

// ReportResponse representa o relatório financeiro de um período
type ReportResponse struct {
	From   string        `json:"from"` // formato AAAA-MM-DD
	To     string        `json:"to"`
	Report report.Report `json:"report"`
}

// FullReportResponse agrega o relatório do período com a fotografia de estoque
type FullReportResponse struct {
	From   string            `json:"from"`
	To     string            `json:"to"`
	Report report.Report     `json:"report"`
	Stock  report.StockStats `json:"stock"`
}

// CardTypeBreakdown representa o total de vendas de um tipo de cartão
type CardTypeBreakdown struct {
	CardType string          `json:"card_type"`
	Total    decimal.Decimal `json:"total"`
	Fees     decimal.Decimal `json:"fees"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
}

// CardSalesResponse representa o relatório de vendas no cartão por tipo
type CardSalesResponse struct {
	From   string              `json:"from"`
	To     string              `json:"to"`
	Total  decimal.Decimal     `json:"total"`
	Fees   decimal.Decimal     `json:"fees"`
	Net    decimal.Decimal     `json:"net"`
	Count  int                 `json:"count"`
	ByType []CardTypeBreakdown `json:"by_type"`
}

// DashboardResponse representa a visão geral do painel: janelas de hoje,
// semana e mês, contadores de cadastro e a fotografia do estoque
type DashboardResponse struct {
	Today         report.Report     `json:"today"`
	Week          report.Report     `json:"week"`
	Month         report.Report     `json:"month"`
	Stock         report.StockStats `json:"stock"`
	CustomerCount int               `json:"customer_count"`
	ProductCount  int               `json:"product_count"`
	OrderCount    int               `json:"order_count"`
	SaleCount     int               `json:"sale_count"`
}
