package company

import (
	"context"
)

// Repository define a interface para operações de repositório de empresas
type Repository interface {
	// Create cria uma nova empresa
	Create(ctx context.Context, c *Company) error

	// FindByID busca uma empresa pelo ID
	FindByID(ctx context.Context, id string) (*Company, error)

	// GetOrCreateDefault retorna a configuração da empresa, criando uma
	// linha com as taxas padrão quando ainda não existe
	GetOrCreateDefault(ctx context.Context, id, name string) (*Company, error)

	// Update atualiza os dados e as taxas da empresa
	Update(ctx context.Context, c *Company) error
}
