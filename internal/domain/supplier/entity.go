package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome do fornecedor não pode ser vazio")
)

// Supplier representa um fornecedor de peças e acessórios
type Supplier struct {
	ID        string    `json:"id"`         // ID do Fornecedor
	CompanyID string    `json:"company_id"` // ID da Empresa
	Name      string    `json:"name"`       // Nome do Fornecedor
	Phone     string    `json:"phone"`      // Telefone de contato
	Document  string    `json:"document"`   // CNPJ
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(companyID, name, phone, document string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Phone:     phone,
		Document:  document,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do fornecedor
func (s *Supplier) Update(name, phone, document string) error {
	if name == "" {
		return ErrEmptyName
	}
	s.Name = name
	s.Phone = phone
	s.Document = document
	s.UpdatedAt = time.Now()
	return nil
}
