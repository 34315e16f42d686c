package dto

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa um item da venda na requisição
type SaleItemRequest struct {
	ProductID   *string         `json:"product_id"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

// SaleRequest representa a requisição de registro de venda. O total é
// sempre recalculado no servidor a partir dos itens.
type SaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
}

// RefundRequest representa a requisição de estorno de venda
type RefundRequest struct {
	Reason string `json:"reason"`
}

// SaleItemResponse representa um item da venda na resposta
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID             string               `json:"id"`
	CompanyID      string               `json:"company_id"`
	Total          decimal.Decimal      `json:"total"`
	PaymentMethod  payment.StoredMethod `json:"payment_method"`
	CardType       payment.CardType     `json:"card_type,omitempty"`
	Method         payment.Method       `json:"method"`
	FeeAmount      decimal.Decimal      `json:"fee_amount"`
	NetAmount      decimal.Decimal      `json:"net_amount"`
	Status         sale.Status          `json:"status"`
	ReturnReason   string               `json:"return_reason,omitempty"`
	ServiceOrderID *string              `json:"service_order_id"`
	Items          []SaleItemResponse   `json:"items"`
	CreatedAt      time.Time            `json:"created_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converte uma venda de domínio para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Description: it.Description,
		})
	}
	return SaleResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		Total:          s.Total,
		PaymentMethod:  s.PaymentMethod,
		CardType:       s.CardType,
		Method:         s.NormalizedMethod(),
		FeeAmount:      s.FeeAmount,
		NetAmount:      s.NetAmount,
		Status:         s.Status,
		ReturnReason:   s.ReturnReason,
		ServiceOrderID: s.ServiceOrderID,
		Items:          items,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleListResponse monta a resposta paginada de vendas
func ToSaleListResponse(sales []*sale.Sale, total, page, size int) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}
	return SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToItemInputs converte os itens da requisição para o formato do domínio
func ToItemInputs(items []SaleItemRequest) []sale.ItemInput {
	inputs := make([]sale.ItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, sale.ItemInput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Description: it.Description,
		})
	}
	return inputs
}
