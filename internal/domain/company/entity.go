package company

import (
	"errors"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName = errors.New("nome da empresa não pode ser vazio")
)

// Company representa a empresa (loja de assistência técnica) e sua
// configuração de taxas de pagamento. Cada empresa possui exatamente uma
// linha de configuração; não existe mais a semântica implícita de
// "primeira linha da tabela".
type Company struct {
	ID         string          `json:"id"`          // ID da Empresa
	Name       string          `json:"name"`        // Nome/Razão Social
	Document   string          `json:"document"`    // CNPJ
	Phone      string          `json:"phone"`       // Telefone de contato
	Address    string          `json:"address"`     // Endereço exibido em recibos
	DebitRate  decimal.Decimal `json:"debit_rate"`  // Taxa de débito (%)
	CreditRate decimal.Decimal `json:"credit_rate"` // Taxa de crédito (%)
	TaxCash    decimal.Decimal `json:"tax_cash"`    // Taxa sobre dinheiro (%)
	TaxPix     decimal.Decimal `json:"tax_pix"`     // Taxa sobre PIX (%)
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewCompany cria uma nova empresa com as taxas padrão
func NewCompany(name, document, phone string) (*Company, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	defaults := payment.DefaultRates()
	now := time.Now()
	return &Company{
		ID:         uuid.New().String(),
		Name:       name,
		Document:   document,
		Phone:      phone,
		DebitRate:  defaults.DebitRate,
		CreditRate: defaults.CreditRate,
		TaxCash:    defaults.TaxCash,
		TaxPix:     defaults.TaxPix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Rates retorna as taxas configuradas no formato usado pelo cálculo de
// pagamento. Taxas zeradas de débito/crédito caem nos valores padrão.
func (c *Company) Rates() payment.Rates {
	rates := payment.Rates{
		TaxCash:    c.TaxCash,
		TaxPix:     c.TaxPix,
		DebitRate:  c.DebitRate,
		CreditRate: c.CreditRate,
	}

	defaults := payment.DefaultRates()
	if rates.DebitRate.IsZero() {
		rates.DebitRate = defaults.DebitRate
	}
	if rates.CreditRate.IsZero() {
		rates.CreditRate = defaults.CreditRate
	}
	return rates
}

// UpdateRates atualiza a configuração de taxas da empresa
func (c *Company) UpdateRates(debitRate, creditRate, taxCash, taxPix decimal.Decimal) {
	c.DebitRate = debitRate
	c.CreditRate = creditRate
	c.TaxCash = taxCash
	c.TaxPix = taxPix
	c.UpdatedAt = time.Now()
}

// UpdateInfo atualiza os dados de exibição da empresa
func (c *Company) UpdateInfo(name, document, phone, address string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Document = document
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}
