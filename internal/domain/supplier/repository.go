package supplier

import (
	"context"
)

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista os fornecedores de uma empresa
	List(ctx context.Context, companyID string, limit, offset int) ([]*Supplier, error)

	// Update atualiza os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error
}
