package serviceorder

import (
	"context"

	"github.com/brunovales/erp-assistencia/internal/domain/sale"
)

// Repository define a interface para operações de repositório de ordens de serviço
type Repository interface {
	// Create cria uma nova O.S., atribuindo o próximo número sequencial
	// da empresa
	Create(ctx context.Context, o *ServiceOrder) error

	// FindByID busca uma O.S. pelo ID
	FindByID(ctx context.Context, id string) (*ServiceOrder, error)

	// FindByOSNumber busca uma O.S. pelo número sequencial da empresa.
	// Usado pela consulta pública de status.
	FindByOSNumber(ctx context.Context, companyID string, osNumber int64) (*ServiceOrder, error)

	// List lista as O.S. de uma empresa com paginação, mais recentes primeiro
	List(ctx context.Context, companyID string, limit, offset int) ([]*ServiceOrder, error)

	// FindByStatus lista as O.S. de uma empresa em um determinado status
	FindByStatus(ctx context.Context, companyID string, status Status, limit, offset int) ([]*ServiceOrder, error)

	// Update atualiza os dados de uma O.S. existente
	Update(ctx context.Context, o *ServiceOrder) error

	// Finalize grava a O.S. finalizada e a venda vinculada na mesma
	// transação: ou as duas entram, ou nenhuma
	Finalize(ctx context.Context, o *ServiceOrder, s *sale.Sale) error

	// CountByCustomer conta as O.S. vinculadas a um cliente
	CountByCustomer(ctx context.Context, customerID string) (int, error)

	// CountByCompany conta as O.S. de uma empresa
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
