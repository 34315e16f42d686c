package closing

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de fechamentos
type Repository interface {
	// Upsert grava o fechamento do dia. Se já existe um fechamento para
	// (empresa, data), os totais são sobrescritos e closed_at renovado —
	// último fechamento vence.
	Upsert(ctx context.Context, c *DailyClosing) error

	// FindByDate busca o fechamento de uma empresa em uma data
	FindByDate(ctx context.Context, companyID string, date time.Time) (*DailyClosing, error)

	// List lista os fechamentos de uma empresa, mais recentes primeiro
	List(ctx context.Context, companyID string, limit, offset int) ([]*DailyClosing, error)
}
