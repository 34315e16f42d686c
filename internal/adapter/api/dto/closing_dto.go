package dto

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/closing"
	"github.com/shopspring/decimal"
)

// CashFlowResponse representa o movimento do dia, fechado ou ao vivo
type CashFlowResponse struct {
	Date          string          `json:"date"` // formato AAAA-MM-DD
	TotalDinheiro decimal.Decimal `json:"total_dinheiro"`
	TotalPix      decimal.Decimal `json:"total_pix"`
	TotalDebito   decimal.Decimal `json:"total_debito"`
	TotalCredito  decimal.Decimal `json:"total_credito"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	TotalNet      decimal.Decimal `json:"total_net"`
	SaleCount     int             `json:"sale_count"`
}

// ClosingResponse representa um fechamento de caixa persistido
type ClosingResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	ClosingDate   string          `json:"closing_date"` // formato AAAA-MM-DD
	TotalDinheiro decimal.Decimal `json:"total_dinheiro"`
	TotalPix      decimal.Decimal `json:"total_pix"`
	TotalDebito   decimal.Decimal `json:"total_debito"`
	TotalCredito  decimal.Decimal `json:"total_credito"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	TotalNet      decimal.Decimal `json:"total_net"`
	SaleCount     int             `json:"sale_count"`
	Status        closing.Status  `json:"status"`
	ClosedAt      *time.Time      `json:"closed_at"`
}

// ClosingListResponse representa o histórico de fechamentos
type ClosingListResponse struct {
	Items []ClosingResponse `json:"items"`
	Total int               `json:"total"`
}

// ToCashFlowResponse converte o resumo do dia para o DTO de resposta
func ToCashFlowResponse(date time.Time, s closing.Summary) CashFlowResponse {
	return CashFlowResponse{
		Date:          date.Format("2006-01-02"),
		TotalDinheiro: s.TotalDinheiro,
		TotalPix:      s.TotalPix,
		TotalDebito:   s.TotalDebito,
		TotalCredito:  s.TotalCredito,
		TotalGross:    s.TotalGross,
		TotalFees:     s.TotalFees,
		TotalNet:      s.TotalNet,
		SaleCount:     s.SaleCount,
	}
}

// ToClosingResponse converte um fechamento de domínio para o DTO de resposta
func ToClosingResponse(c *closing.DailyClosing) ClosingResponse {
	return ClosingResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		ClosingDate:   c.ClosingDate.Format("2006-01-02"),
		TotalDinheiro: c.TotalDinheiro,
		TotalPix:      c.TotalPix,
		TotalDebito:   c.TotalDebito,
		TotalCredito:  c.TotalCredito,
		TotalGross:    c.TotalGross,
		TotalFees:     c.TotalFees,
		TotalNet:      c.TotalNet,
		SaleCount:     c.SaleCount,
		Status:        c.Status,
		ClosedAt:      c.ClosedAt,
	}
}

// ToClosingListResponse monta a resposta do histórico de fechamentos
func ToClosingListResponse(closings []*closing.DailyClosing) ClosingListResponse {
	items := make([]ClosingResponse, 0, len(closings))
	for _, c := range closings {
		items = append(items, ToClosingResponse(c))
	}
	return ClosingListResponse{
		Items: items,
		Total: len(items),
	}
}
