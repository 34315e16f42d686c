package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List lista os produtos de uma empresa com paginação
	List(ctx context.Context, companyID string, limit, offset int) ([]*Product, error)

	// ListAll lista todos os produtos de uma empresa, sem paginação.
	// Usado pelos agregadores de relatório e valorização de estoque.
	ListAll(ctx context.Context, companyID string) ([]*Product, error)

	// FindByName busca produtos pelo nome (busca parcial)
	FindByName(ctx context.Context, companyID, name string, limit, offset int) ([]*Product, error)

	// FindBelowMinimum lista os produtos com estoque igual ou abaixo do mínimo
	FindBelowMinimum(ctx context.Context, companyID string) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// ApplyBatch aplica um lote de reposição: atualiza estoque e custo médio
	// do produto e grava o registro do lote na mesma transação
	ApplyBatch(ctx context.Context, p *Product, b *Batch) error

	// ListBatches lista o histórico de lotes de um produto
	ListBatches(ctx context.Context, productID string) ([]*Batch, error)

	// CountByCompany conta quantos produtos existem para uma empresa
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
