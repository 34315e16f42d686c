package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrSaleAlreadyReversed = errors.New("venda já foi estornada")
	ErrInsufficientStock   = errors.New("estoque insuficiente para o produto")
	ErrSaleProductMissing  = errors.New("produto da venda não encontrado")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create. Venda, itens e baixas de
// estoque são gravados em uma única transação: ou tudo entra, ou nada.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertSaleTx(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar venda: %w", err)
	}
	return nil
}

// insertSaleTx grava a venda, seus itens e as baixas de estoque dentro de
// uma transação já aberta. Compartilhado com a finalização de O.S., que
// cria a venda vinculada na mesma transação da ordem.
func insertSaleTx(ctx context.Context, tx pgx.Tx, s *sale.Sale) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO sales (
			id, company_id, total, payment_method, card_type, fee_amount,
			net_amount, status, return_reason, service_order_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.CompanyID, s.Total, s.PaymentMethod, s.CardType, s.FeeAmount,
		s.NetAmount, s.Status, s.ReturnReason, s.ServiceOrderID, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar venda: %w", err)
	}

	for _, item := range s.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, description)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Description)
		if err != nil {
			return fmt.Errorf("erro ao gravar item da venda: %w", err)
		}

		if item.ProductID == nil {
			continue
		}

		// Baixa condicional: só desconta se há estoque suficiente.
		// Zero linhas afetadas aborta a venda inteira.
		result, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = $2
			WHERE id = $3 AND company_id = $4 AND stock >= $1`,
			item.Quantity, time.Now(), *item.ProductID, s.CompanyID)
		if err != nil {
			return fmt.Errorf("erro ao baixar estoque: %w", err)
		}
		if result.RowsAffected() == 0 {
			// Distinguir produto inexistente de estoque insuficiente
			var exists bool
			if err := tx.QueryRow(ctx,
				"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND company_id = $2)",
				*item.ProductID, s.CompanyID).Scan(&exists); err != nil {
				return fmt.Errorf("erro ao verificar produto: %w", err)
			}
			if !exists {
				return ErrSaleProductMissing
			}
			return ErrInsufficientStock
		}
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	err := r.db.QueryRow(ctx,
		`SELECT id, company_id, total, payment_method, card_type, fee_amount,
			net_amount, status, return_reason, service_order_id, created_at
		FROM sales WHERE id = $1`,
		id).Scan(
		&s.ID, &s.CompanyID, &s.Total, &s.PaymentMethod, &s.CardType,
		&s.FeeAmount, &s.NetAmount, &s.Status, &s.ReturnReason,
		&s.ServiceOrderID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.loadItems(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, total, payment_method, card_type, fee_amount,
			net_amount, status, return_reason, service_order_id, created_at
		FROM sales
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, total, payment_method, card_type, fee_amount,
			net_amount, status, return_reason, service_order_id, created_at
		FROM sales
		WHERE company_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`,
		companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do período: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// FindCompletedByPeriod implementa sale.Repository.FindCompletedByPeriod
func (r *SaleRepository) FindCompletedByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, total, payment_method, card_type, fee_amount,
			net_amount, status, return_reason, service_order_id, created_at
		FROM sales
		WHERE company_id = $1 AND status = $2 AND created_at >= $3 AND created_at <= $4
		ORDER BY created_at ASC`,
		companyID, sale.StatusCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do período: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// Reverse implementa sale.Repository.Reverse. Devolução de estoque e
// marcação/remoção da venda acontecem na mesma transação.
func (r *SaleRepository) Reverse(ctx context.Context, id string, mode sale.ReverseMode, reason string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var status sale.Status
	err = tx.QueryRow(ctx, "SELECT status FROM sales WHERE id = $1 FOR UPDATE", id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSaleNotFound
		}
		return fmt.Errorf("erro ao buscar venda: %w", err)
	}
	if status == sale.StatusRefunded {
		return ErrSaleAlreadyReversed
	}

	// Devolver o estoque de cada item com produto vinculado
	_, err = tx.Exec(ctx,
		`UPDATE products p SET stock = p.stock + i.quantity, updated_at = $2
		FROM sale_items i
		WHERE i.sale_id = $1 AND i.product_id = p.id`,
		id, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao devolver estoque: %w", err)
	}

	switch mode {
	case sale.ReverseDelete:
		if _, err := tx.Exec(ctx, "DELETE FROM sale_items WHERE sale_id = $1", id); err != nil {
			return fmt.Errorf("erro ao excluir itens da venda: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM sales WHERE id = $1", id); err != nil {
			return fmt.Errorf("erro ao excluir venda: %w", err)
		}
	default:
		_, err = tx.Exec(ctx,
			"UPDATE sales SET status = $1, return_reason = $2 WHERE id = $3",
			sale.StatusRefunded, reason, id)
		if err != nil {
			return fmt.Errorf("erro ao marcar venda como estornada: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar estorno: %w", err)
	}
	return nil
}

// CountByCompany implementa sale.Repository.CountByCompany
func (r *SaleRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales WHERE company_id = $1",
		companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

// scanSaleRows processa resultados de consultas que retornam múltiplas
// vendas e carrega os itens de todas em uma segunda consulta
func (r *SaleRepository) scanSaleRows(ctx context.Context, rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	ids := make([]string, 0)

	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.CompanyID, &s.Total, &s.PaymentMethod, &s.CardType,
			&s.FeeAmount, &s.NetAmount, &s.Status, &s.ReturnReason,
			&s.ServiceOrderID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	if len(ids) == 0 {
		return sales, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		s.Items = items[s.ID]
	}

	return sales, nil
}

// loadItems carrega os itens de um conjunto de vendas agrupados por venda
func (r *SaleRepository) loadItems(ctx context.Context, saleIDs []string) (map[string][]sale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, quantity, unit_price, description
		FROM sale_items WHERE sale_id = ANY($1)`,
		saleIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens das vendas: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]sale.Item)
	for rows.Next() {
		var it sale.Item
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Description); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items[it.SaleID] = append(items[it.SaleID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}
