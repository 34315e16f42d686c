package serviceorder

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProblem      = errors.New("descrição do problema não pode ser vazia")
	ErrInvalidStatus     = errors.New("status de O.S. inválido")
	ErrInvalidTransition = errors.New("transição de status não permitida")
	ErrAlreadyFinalized  = errors.New("ordem de serviço já foi finalizada")
	ErrNotReady          = errors.New("ordem de serviço ainda não está pronta para finalização")
)

// Status representa o estado da ordem de serviço
type Status string

// Constantes para Status. O fluxo é:
// ABERTO → EM_REPARO / AGUARDANDO_PECA / PRONTO → FINALIZADO / ENTREGUE
const (
	StatusAberto         Status = "ABERTO"
	StatusEmReparo       Status = "EM_REPARO"
	StatusAguardandoPeca Status = "AGUARDANDO_PECA"
	StatusPronto         Status = "PRONTO"
	StatusFinalizado     Status = "FINALIZADO"
	StatusEntregue       Status = "ENTREGUE"
)

// transitions define as transições de status permitidas
var transitions = map[Status][]Status{
	StatusAberto:         {StatusEmReparo, StatusAguardandoPeca, StatusPronto},
	StatusEmReparo:       {StatusAguardandoPeca, StatusPronto},
	StatusAguardandoPeca: {StatusEmReparo, StatusPronto},
	StatusPronto:         {StatusEmReparo, StatusFinalizado, StatusEntregue},
	StatusFinalizado:     {StatusEntregue},
	StatusEntregue:       {},
}

// ValidStatus verifica se o valor é um status conhecido
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// ServiceOrder representa uma ordem de serviço (O.S.) de reparo de aparelho
type ServiceOrder struct {
	ID             string          `json:"id"`              // ID da O.S.
	OSNumber       int64           `json:"os_number"`       // Número sequencial exibido ao cliente
	CompanyID      string          `json:"company_id"`      // ID da Empresa
	CustomerID     *string         `json:"customer_id"`     // Cliente vinculado (opcional)
	DeviceBrand    string          `json:"device_brand"`    // Marca do aparelho
	DeviceModel    string          `json:"device_model"`    // Modelo do aparelho
	DeviceSerial   string          `json:"device_serial"`   // Número de série/IMEI
	DevicePasscode string          `json:"device_passcode"` // Senha de desbloqueio informada
	Problem        string          `json:"problem"`         // Descrição do problema
	Checklist      json.RawMessage `json:"checklist"`       // Checklist de entrada (estrutura livre)
	Status         Status          `json:"status"`          // Estado atual
	TotalPrice     decimal.Decimal `json:"total_price"`     // Valor cobrado do cliente
	CostPrice      decimal.Decimal `json:"cost_price"`      // Custo de peças
	ServicePrice   decimal.Decimal `json:"service_price"`   // Mão de obra (total - custo)
	PaymentMethod  string          `json:"payment_method"`  // Forma de pagamento acordada
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewServiceOrder cria uma nova ordem de serviço no status ABERTO.
// O número sequencial (OSNumber) é atribuído pelo repositório na criação.
func NewServiceOrder(companyID string, customerID *string, brand, model, serial, passcode, problem string, checklist json.RawMessage) (*ServiceOrder, error) {
	if problem == "" {
		return nil, ErrEmptyProblem
	}
	if len(checklist) == 0 {
		checklist = json.RawMessage("{}")
	}

	now := time.Now()
	return &ServiceOrder{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		CustomerID:     customerID,
		DeviceBrand:    brand,
		DeviceModel:    model,
		DeviceSerial:   serial,
		DevicePasscode: passcode,
		Problem:        problem,
		Checklist:      checklist,
		Status:         StatusAberto,
		TotalPrice:     decimal.Zero,
		CostPrice:      decimal.Zero,
		ServicePrice:   decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ChangeStatus muda o status respeitando o fluxo da O.S.
func (o *ServiceOrder) ChangeStatus(next Status) error {
	if !ValidStatus(next) {
		return ErrInvalidStatus
	}
	for _, allowed := range transitions[o.Status] {
		if next == allowed {
			o.Status = next
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrInvalidTransition
}

// SetPrices define os valores da O.S. A mão de obra é derivada:
// servicePrice = total - custo.
func (o *ServiceOrder) SetPrices(total, cost decimal.Decimal) {
	o.TotalPrice = total
	o.CostPrice = cost
	o.ServicePrice = total.Sub(cost)
	o.UpdatedAt = time.Now()
}

// Finalize marca a O.S. como finalizada com a forma de pagamento usada.
// Só é permitido a partir do status PRONTO; a venda vinculada é criada
// pelo repositório na mesma transação.
func (o *ServiceOrder) Finalize(paymentMethod string) error {
	if o.Status == StatusFinalizado || o.Status == StatusEntregue {
		return ErrAlreadyFinalized
	}
	if o.Status != StatusPronto {
		return ErrNotReady
	}
	o.Status = StatusFinalizado
	o.PaymentMethod = paymentMethod
	o.UpdatedAt = time.Now()
	return nil
}
