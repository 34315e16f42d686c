package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/closing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClosingNotFound = errors.New("fechamento não encontrado")
)

// ClosingRepository implementa a interface closing.Repository
type ClosingRepository struct {
	db *pgxpool.Pool
}

// NewClosingRepository cria uma nova instância de ClosingRepository
func NewClosingRepository(db *pgxpool.Pool) closing.Repository {
	return &ClosingRepository{
		db: db,
	}
}

const closingColumns = `id, company_id, closing_date, total_dinheiro, total_pix,
	total_debito, total_credito, total_gross, total_fees, total_net,
	sale_count, status, closed_at, created_at`

// Upsert implementa closing.Repository.Upsert. O índice único
// (company_id, closing_date) garante um fechamento por dia; refechar
// sobrescreve os totais e renova closed_at.
func (r *ClosingRepository) Upsert(ctx context.Context, c *closing.DailyClosing) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO daily_closings (
			id, company_id, closing_date, total_dinheiro, total_pix,
			total_debito, total_credito, total_gross, total_fees, total_net,
			sale_count, status, closed_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (company_id, closing_date) DO UPDATE SET
			total_dinheiro = EXCLUDED.total_dinheiro,
			total_pix = EXCLUDED.total_pix,
			total_debito = EXCLUDED.total_debito,
			total_credito = EXCLUDED.total_credito,
			total_gross = EXCLUDED.total_gross,
			total_fees = EXCLUDED.total_fees,
			total_net = EXCLUDED.total_net,
			sale_count = EXCLUDED.sale_count,
			status = EXCLUDED.status,
			closed_at = EXCLUDED.closed_at`,
		c.ID, c.CompanyID, c.ClosingDate, c.TotalDinheiro, c.TotalPix,
		c.TotalDebito, c.TotalCredito, c.TotalGross, c.TotalFees, c.TotalNet,
		c.SaleCount, c.Status, c.ClosedAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar fechamento: %w", err)
	}
	return nil
}

// FindByDate implementa closing.Repository.FindByDate
func (r *ClosingRepository) FindByDate(ctx context.Context, companyID string, date time.Time) (*closing.DailyClosing, error) {
	start, end := closing.DayWindow(date)

	var c closing.DailyClosing
	err := r.db.QueryRow(ctx,
		"SELECT "+closingColumns+` FROM daily_closings
		WHERE company_id = $1 AND closing_date >= $2 AND closing_date <= $3`,
		companyID, start, end).Scan(
		&c.ID, &c.CompanyID, &c.ClosingDate, &c.TotalDinheiro, &c.TotalPix,
		&c.TotalDebito, &c.TotalCredito, &c.TotalGross, &c.TotalFees,
		&c.TotalNet, &c.SaleCount, &c.Status, &c.ClosedAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClosingNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fechamento: %w", err)
	}
	return &c, nil
}

// List implementa closing.Repository.List
func (r *ClosingRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*closing.DailyClosing, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+closingColumns+` FROM daily_closings
		WHERE company_id = $1
		ORDER BY closing_date DESC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fechamentos: %w", err)
	}
	defer rows.Close()

	closings := make([]*closing.DailyClosing, 0)
	for rows.Next() {
		var c closing.DailyClosing
		err := rows.Scan(
			&c.ID, &c.CompanyID, &c.ClosingDate, &c.TotalDinheiro, &c.TotalPix,
			&c.TotalDebito, &c.TotalCredito, &c.TotalGross, &c.TotalFees,
			&c.TotalNet, &c.SaleCount, &c.Status, &c.ClosedAt, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fechamento: %w", err)
		}
		closings = append(closings, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return closings, nil
}
