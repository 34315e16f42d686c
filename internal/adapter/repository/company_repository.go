package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/company"
	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCompanyNotFound = errors.New("empresa não encontrada")
)

// CompanyRepository implementa a interface company.Repository
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository cria uma nova instância de CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) company.Repository {
	return &CompanyRepository{
		db: db,
	}
}

const companyColumns = `id, name, document, phone, address, debit_rate,
	credit_rate, tax_cash, tax_pix, created_at, updated_at`

// Create implementa company.Repository.Create
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (
			id, name, document, phone, address, debit_rate, credit_rate,
			tax_cash, tax_pix, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Document, c.Phone, c.Address, c.DebitRate,
		c.CreditRate, c.TaxCash, c.TaxPix, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar empresa: %w", err)
	}
	return nil
}

// FindByID implementa company.Repository.FindByID
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	var c company.Company
	err := r.db.QueryRow(ctx,
		"SELECT "+companyColumns+" FROM companies WHERE id = $1",
		id).Scan(
		&c.ID, &c.Name, &c.Document, &c.Phone, &c.Address, &c.DebitRate,
		&c.CreditRate, &c.TaxCash, &c.TaxPix, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}
	return &c, nil
}

// GetOrCreateDefault implementa company.Repository.GetOrCreateDefault. O
// ON CONFLICT garante que duas chamadas concorrentes não dupliquem a
// empresa; a linha existente sempre vence.
func (r *CompanyRepository) GetOrCreateDefault(ctx context.Context, id, name string) (*company.Company, error) {
	c, err := r.FindByID(ctx, id)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrCompanyNotFound) {
		return nil, err
	}

	defaults := payment.DefaultRates()
	now := time.Now()
	_, err = r.db.Exec(ctx,
		`INSERT INTO companies (
			id, name, document, phone, address, debit_rate, credit_rate,
			tax_cash, tax_pix, created_at, updated_at
		) VALUES ($1, $2, '', '', '', $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO NOTHING`,
		id, name, defaults.DebitRate, defaults.CreditRate,
		defaults.TaxCash, defaults.TaxPix, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar empresa padrão: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Update implementa company.Repository.Update
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	result, err := r.db.Exec(ctx,
		`UPDATE companies SET
			name = $1, document = $2, phone = $3, address = $4, debit_rate = $5,
			credit_rate = $6, tax_cash = $7, tax_pix = $8, updated_at = $9
		WHERE id = $10`,
		c.Name, c.Document, c.Phone, c.Address, c.DebitRate, c.CreditRate,
		c.TaxCash, c.TaxPix, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
