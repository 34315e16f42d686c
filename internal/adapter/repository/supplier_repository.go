package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunovales/erp-assistencia/internal/domain/supplier"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound = errors.New("fornecedor não encontrado")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierColumns = "id, company_id, name, phone, document, created_at, updated_at"

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (id, company_id, name, phone, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CompanyID, s.Name, s.Phone, s.Document, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.QueryRow(ctx,
		"SELECT "+supplierColumns+" FROM suppliers WHERE id = $1",
		id).Scan(&s.ID, &s.CompanyID, &s.Name, &s.Phone, &s.Document, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}
	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+supplierColumns+` FROM suppliers
		WHERE company_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Phone, &s.Document, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return suppliers, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	result, err := r.db.Exec(ctx,
		`UPDATE suppliers SET name = $1, phone = $2, document = $3, updated_at = $4
		WHERE id = $5 AND company_id = $6`,
		s.Name, s.Phone, s.Document, s.UpdatedAt, s.ID, s.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete implementa supplier.Repository.Delete. Produtos que apontavam para
// o fornecedor ficam com o vínculo nulo (ON DELETE SET NULL no banco).
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
