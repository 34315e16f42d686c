package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
	ErrHasOrders = errors.New("cliente possui ordens de serviço vinculadas")
)

// Customer representa um cliente da loja
type Customer struct {
	ID        string    `json:"id"`         // ID do Cliente
	CompanyID string    `json:"company_id"` // ID da Empresa
	Name      string    `json:"name"`       // Nome do Cliente
	Phone     string    `json:"phone"`      // Telefone/WhatsApp
	Document  string    `json:"document"`   // CPF/CNPJ
	Employer  string    `json:"employer"`   // Empresa onde trabalha (campo livre)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(companyID, name, phone, document, employer string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Phone:     phone,
		Document:  document,
		Employer:  employer,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, phone, document, employer string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Phone = phone
	c.Document = document
	c.Employer = employer
	c.UpdatedAt = time.Now()
	return nil
}
