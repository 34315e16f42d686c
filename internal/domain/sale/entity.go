package sale

import (
	"errors"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems         = errors.New("venda precisa de ao menos um item")
	ErrInvalidTotal    = errors.New("total da venda deve ser maior que zero")
	ErrAlreadyRefunded = errors.New("venda já foi estornada")
)

// Status representa o estado da venda
type Status string

// Constantes para Status
const (
	StatusCompleted Status = "COMPLETED" // Venda concluída
	StatusRefunded  Status = "REFUNDED"  // Venda estornada (estoque devolvido)
)

// ReverseMode define a política de estorno de uma venda
type ReverseMode int

// Constantes para ReverseMode
const (
	// ReverseRefund mantém o registro da venda marcado como REFUNDED,
	// preservando a trilha de auditoria
	ReverseRefund ReverseMode = iota
	// ReverseDelete remove a venda e seus itens definitivamente
	ReverseDelete
)

// Item representa uma linha da venda. ProductID é nulo para linhas geradas
// por ordem de serviço (mão de obra).
type Item struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	ProductID   *string         `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

// Sale representa uma venda do PDV ou gerada por finalização de O.S.
type Sale struct {
	ID             string               `json:"id"`
	CompanyID      string               `json:"company_id"`
	Total          decimal.Decimal      `json:"total"`          // Valor bruto
	PaymentMethod  payment.StoredMethod `json:"payment_method"` // DINHEIRO/PIX/CARTAO
	CardType       payment.CardType     `json:"card_type"`      // DEBITO/CREDITO quando CARTAO
	FeeAmount      decimal.Decimal      `json:"fee_amount"`     // Taxa da operadora
	NetAmount      decimal.Decimal      `json:"net_amount"`     // Líquido (total - taxa)
	Status         Status               `json:"status"`
	ReturnReason   string               `json:"return_reason"` // Motivo do estorno
	ServiceOrderID *string              `json:"service_order_id"`
	Items          []Item               `json:"items"`
	CreatedAt      time.Time            `json:"created_at"`
}

// ItemInput representa um item na criação de venda
type ItemInput struct {
	ProductID   *string
	Quantity    int
	UnitPrice   decimal.Decimal
	Description string
}

// NewSale monta uma venda COMPLETED calculando taxa e líquido a partir da
// forma de pagamento e das taxas da empresa. Invariante: NetAmount +
// FeeAmount == Total.
func NewSale(companyID string, items []ItemInput, rawMethod string, gross decimal.Decimal, rates payment.Rates, serviceOrderID *string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !gross.IsPositive() {
		return nil, ErrInvalidTotal
	}

	b := payment.Calculate(gross, rawMethod, rates)

	s := &Sale{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Total:          b.Gross,
		PaymentMethod:  b.StoredMethod,
		CardType:       b.CardType,
		FeeAmount:      b.Fee,
		NetAmount:      b.Net,
		Status:         StatusCompleted,
		ServiceOrderID: serviceOrderID,
		CreatedAt:      time.Now(),
	}

	for _, in := range items {
		s.Items = append(s.Items, Item{
			ID:          uuid.New().String(),
			SaleID:      s.ID,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Description: in.Description,
		})
	}

	return s, nil
}

// Refund marca a venda como estornada. Estornar duas vezes é rejeitado.
func (s *Sale) Refund(reason string) error {
	if s.Status == StatusRefunded {
		return ErrAlreadyRefunded
	}
	s.Status = StatusRefunded
	s.ReturnReason = reason
	return nil
}

// IsCompleted verifica se a venda está concluída (entra nos relatórios)
func (s *Sale) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// NormalizedMethod retorna a forma de pagamento para fins de agregação,
// reconstruindo DEBITO/CREDITO a partir do subtipo do cartão
func (s *Sale) NormalizedMethod() payment.Method {
	if s.PaymentMethod == payment.StoredCartao {
		if s.CardType == payment.CardDebito {
			return payment.MethodDebito
		}
		return payment.MethodCredito
	}
	return payment.Normalize(string(s.PaymentMethod))
}
