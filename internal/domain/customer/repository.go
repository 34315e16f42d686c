package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByDocumentOrPhone busca um cliente pelo documento OU telefone.
	// Usado na abertura de O.S. para reaproveitar cadastros existentes.
	FindByDocumentOrPhone(ctx context.Context, companyID, document, phone string) (*Customer, error)

	// List lista os clientes de uma empresa com paginação
	List(ctx context.Context, companyID string, limit, offset int) ([]*Customer, error)

	// FindByName busca clientes pelo nome (busca parcial)
	FindByName(ctx context.Context, companyID, name string, limit, offset int) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente. Retorna ErrHasOrders quando existem
	// ordens de serviço vinculadas.
	Delete(ctx context.Context, id string) error

	// CountByCompany conta quantos clientes existem para uma empresa
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
