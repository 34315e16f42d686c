package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunovales/erp-assistencia/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrCustomerHasOrders = errors.New("cliente possui ordens de serviço vinculadas")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = "id, company_id, name, phone, document, employer, created_at, updated_at"

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (id, company_id, name, phone, document, employer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.CompanyID, c.Name, c.Phone, c.Document, c.Employer, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1",
		id).Scan(&c.ID, &c.CompanyID, &c.Name, &c.Phone, &c.Document, &c.Employer, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// FindByDocumentOrPhone implementa customer.Repository.FindByDocumentOrPhone.
// Documento e telefone vazios não casam com nada.
func (r *CustomerRepository) FindByDocumentOrPhone(ctx context.Context, companyID, document, phone string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.QueryRow(ctx,
		"SELECT "+customerColumns+` FROM customers
		WHERE company_id = $1
			AND ((document <> '' AND document = $2) OR (phone <> '' AND phone = $3))
		LIMIT 1`,
		companyID, document, phone).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Phone, &c.Document, &c.Employer, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+customerColumns+` FROM customers
		WHERE company_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// FindByName implementa customer.Repository.FindByName
func (r *CustomerRepository) FindByName(ctx context.Context, companyID, name string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+customerColumns+` FROM customers
		WHERE company_id = $1 AND name ILIKE $2
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		companyID, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET name = $1, phone = $2, document = $3, employer = $4, updated_at = $5
		WHERE id = $6 AND company_id = $7`,
		c.Name, c.Phone, c.Document, c.Employer, c.UpdatedAt, c.ID, c.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Delete implementa customer.Repository.Delete. Clientes com ordens de
// serviço vinculadas não podem ser excluídos.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	var orders int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM service_orders WHERE customer_id = $1",
		id).Scan(&orders)
	if err != nil {
		return fmt.Errorf("erro ao verificar ordens do cliente: %w", err)
	}
	if orders > 0 {
		return ErrCustomerHasOrders
	}

	result, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// CountByCompany implementa customer.Repository.CountByCompany
func (r *CustomerRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM customers WHERE company_id = $1",
		companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// scanCustomerRows processa resultados de consultas que retornam múltiplos clientes
func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var c customer.Customer
		err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Phone, &c.Document, &c.Employer, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return customers, nil
}
