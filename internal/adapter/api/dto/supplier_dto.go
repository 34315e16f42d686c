package dto

import (
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/supplier"
)

// SupplierRequest representa a requisição de criação/atualização de fornecedor
type SupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}

// ToSupplierResponse converte um fornecedor de domínio para o DTO de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Phone:     s.Phone,
		Document:  s.Document,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse monta a resposta de lista de fornecedores
func ToSupplierListResponse(suppliers []*supplier.Supplier) SupplierListResponse {
	items := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, ToSupplierResponse(s))
	}
	return SupplierListResponse{
		Items: items,
		Total: len(items),
	}
}
