package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas.
// Criação e estorno são transacionais: a venda, seus itens e os ajustes de
// estoque são gravados todos juntos ou nenhum.
type Repository interface {
	// Create grava a venda com seus itens e baixa o estoque de cada item
	// com produto vinculado, tudo em uma transação. A baixa é condicional
	// (stock >= quantidade); estoque insuficiente aborta a venda inteira.
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID, com seus itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas de uma empresa com paginação, mais recentes primeiro
	List(ctx context.Context, companyID string, limit, offset int) ([]*Sale, error)

	// FindByPeriod lista as vendas de uma empresa criadas no intervalo
	// [from, to], com seus itens, independente de status
	FindByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*Sale, error)

	// FindCompletedByPeriod lista apenas as vendas COMPLETED do intervalo,
	// com seus itens. Base dos relatórios.
	FindCompletedByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*Sale, error)

	// Reverse estorna uma venda devolvendo o estoque de cada item, em uma
	// transação. ReverseRefund marca a venda como REFUNDED preservando o
	// registro; ReverseDelete apaga venda e itens. Estornar uma venda já
	// estornada é rejeitado.
	Reverse(ctx context.Context, id string, mode ReverseMode, reason string) error

	// CountByCompany conta as vendas de uma empresa
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
