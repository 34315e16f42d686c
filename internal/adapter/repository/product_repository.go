package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunovales/erp-assistencia/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, company_id, name, category, stock, cost_price,
	sale_price, min_quantity, supplier_id, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, company_id, name, category, stock, cost_price, sale_price,
			min_quantity, supplier_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.CompanyID, p.Name, p.Category, p.Stock, p.CostPrice,
		p.SalePrice, p.MinQuantity, p.SupplierID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1",
		id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Category, &p.Stock, &p.CostPrice,
		&p.SalePrice, &p.MinQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+` FROM products
		WHERE company_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// ListAll implementa product.Repository.ListAll
func (r *ProductRepository) ListAll(ctx context.Context, companyID string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE company_id = $1 ORDER BY name ASC",
		companyID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, companyID, name string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+` FROM products
		WHERE company_id = $1 AND name ILIKE $2
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		companyID, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// FindBelowMinimum implementa product.Repository.FindBelowMinimum
func (r *ProductRepository) FindBelowMinimum(ctx context.Context, companyID string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+` FROM products
		WHERE company_id = $1 AND stock <= min_quantity
		ORDER BY stock ASC, name ASC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos abaixo do mínimo: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, category = $2, stock = $3, cost_price = $4,
			sale_price = $5, min_quantity = $6, supplier_id = $7, updated_at = $8
		WHERE id = $9 AND company_id = $10`,
		p.Name, p.Category, p.Stock, p.CostPrice, p.SalePrice,
		p.MinQuantity, p.SupplierID, p.UpdatedAt, p.ID, p.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ApplyBatch implementa product.Repository.ApplyBatch. A atualização do
// produto (estoque + custo médio) e o registro do lote entram na mesma
// transação.
func (r *ProductRepository) ApplyBatch(ctx context.Context, p *product.Product, b *product.Batch) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE products SET
			stock = $1, cost_price = $2, sale_price = $3, updated_at = $4
		WHERE id = $5 AND company_id = $6`,
		p.Stock, p.CostPrice, p.SalePrice, p.UpdatedAt, p.ID, p.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao aplicar lote ao produto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO product_batches (id, product_id, quantity, cost_price, sale_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.ProductID, b.Quantity, b.CostPrice, b.SalePrice, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar lote: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar lote: %w", err)
	}
	return nil
}

// ListBatches implementa product.Repository.ListBatches
func (r *ProductRepository) ListBatches(ctx context.Context, productID string) ([]*product.Batch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, quantity, cost_price, sale_price, created_at
		FROM product_batches
		WHERE product_id = $1
		ORDER BY created_at DESC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lotes: %w", err)
	}
	defer rows.Close()

	batches := make([]*product.Batch, 0)
	for rows.Next() {
		var b product.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Quantity, &b.CostPrice, &b.SalePrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler lote: %w", err)
		}
		batches = append(batches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return batches, nil
}

// CountByCompany implementa product.Repository.CountByCompany
func (r *ProductRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE company_id = $1",
		companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// scanProductRows processa resultados de consultas que retornam múltiplos produtos
func (r *ProductRepository) scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.Category, &p.Stock, &p.CostPrice,
			&p.SalePrice, &p.MinQuantity, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return products, nil
}
