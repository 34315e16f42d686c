package dto

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/company"
	"github.com/shopspring/decimal"
)

// ConfigRequest representa a atualização da configuração da empresa.
// Taxas ausentes mantêm o valor atual.
type ConfigRequest struct {
	Name       string           `json:"name" binding:"required"`
	Document   string           `json:"document"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
	DebitRate  *decimal.Decimal `json:"debit_rate"`
	CreditRate *decimal.Decimal `json:"credit_rate"`
	TaxCash    *decimal.Decimal `json:"tax_cash"`
	TaxPix     *decimal.Decimal `json:"tax_pix"`
}

// RatesRequest representa a atualização isolada das taxas de pagamento.
// Taxas ausentes mantêm o valor atual.
type RatesRequest struct {
	DebitRate  *decimal.Decimal `json:"debit_rate"`
	CreditRate *decimal.Decimal `json:"credit_rate"`
	TaxCash    *decimal.Decimal `json:"tax_cash"`
	TaxPix     *decimal.Decimal `json:"tax_pix"`
}

// ConfigResponse representa a configuração da empresa
type ConfigResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Document   string          `json:"document"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	DebitRate  decimal.Decimal `json:"debit_rate"`
	CreditRate decimal.Decimal `json:"credit_rate"`
	TaxCash    decimal.Decimal `json:"tax_cash"`
	TaxPix     decimal.Decimal `json:"tax_pix"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToConfigResponse converte a empresa de domínio para o DTO de configuração
func ToConfigResponse(c *company.Company) ConfigResponse {
	return ConfigResponse{
		ID:         c.ID,
		Name:       c.Name,
		Document:   c.Document,
		Phone:      c.Phone,
		Address:    c.Address,
		DebitRate:  c.DebitRate,
		CreditRate: c.CreditRate,
		TaxCash:    c.TaxCash,
		TaxPix:     c.TaxPix,
		UpdatedAt:  c.UpdatedAt,
	}
}
