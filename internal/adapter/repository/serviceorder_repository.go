package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/brunovales/erp-assistencia/internal/domain/serviceorder"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrServiceOrderNotFound = errors.New("ordem de serviço não encontrada")
)

// ServiceOrderRepository implementa a interface serviceorder.Repository
type ServiceOrderRepository struct {
	db *pgxpool.Pool
}

// NewServiceOrderRepository cria uma nova instância de ServiceOrderRepository
func NewServiceOrderRepository(db *pgxpool.Pool) serviceorder.Repository {
	return &ServiceOrderRepository{
		db: db,
	}
}

const serviceOrderColumns = `id, os_number, company_id, customer_id, device_brand,
	device_model, device_serial, device_passcode, problem, checklist, status,
	total_price, cost_price, service_price, payment_method, created_at, updated_at`

// Create implementa serviceorder.Repository.Create. O número sequencial da
// O.S. é atribuído no INSERT a partir do maior número da empresa; o índice
// único (company_id, os_number) barra corridas.
func (r *ServiceOrderRepository) Create(ctx context.Context, o *serviceorder.ServiceOrder) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO service_orders (
			id, os_number, company_id, customer_id, device_brand, device_model,
			device_serial, device_passcode, problem, checklist, status,
			total_price, cost_price, service_price, payment_method, created_at, updated_at
		) VALUES (
			$1,
			(SELECT COALESCE(MAX(os_number), 0) + 1 FROM service_orders WHERE company_id = $2),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING os_number`,
		o.ID, o.CompanyID, o.CustomerID, o.DeviceBrand, o.DeviceModel,
		o.DeviceSerial, o.DevicePasscode, o.Problem, o.Checklist, o.Status,
		o.TotalPrice, o.CostPrice, o.ServicePrice, o.PaymentMethod,
		o.CreatedAt, o.UpdatedAt).Scan(&o.OSNumber)
	if err != nil {
		return fmt.Errorf("erro ao criar ordem de serviço: %w", err)
	}
	return nil
}

// FindByID implementa serviceorder.Repository.FindByID
func (r *ServiceOrderRepository) FindByID(ctx context.Context, id string) (*serviceorder.ServiceOrder, error) {
	var o serviceorder.ServiceOrder
	err := r.db.QueryRow(ctx,
		"SELECT "+serviceOrderColumns+" FROM service_orders WHERE id = $1",
		id).Scan(
		&o.ID, &o.OSNumber, &o.CompanyID, &o.CustomerID, &o.DeviceBrand,
		&o.DeviceModel, &o.DeviceSerial, &o.DevicePasscode, &o.Problem,
		&o.Checklist, &o.Status, &o.TotalPrice, &o.CostPrice, &o.ServicePrice,
		&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de serviço: %w", err)
	}
	return &o, nil
}

// FindByOSNumber implementa serviceorder.Repository.FindByOSNumber
func (r *ServiceOrderRepository) FindByOSNumber(ctx context.Context, companyID string, osNumber int64) (*serviceorder.ServiceOrder, error) {
	var o serviceorder.ServiceOrder
	err := r.db.QueryRow(ctx,
		"SELECT "+serviceOrderColumns+" FROM service_orders WHERE company_id = $1 AND os_number = $2",
		companyID, osNumber).Scan(
		&o.ID, &o.OSNumber, &o.CompanyID, &o.CustomerID, &o.DeviceBrand,
		&o.DeviceModel, &o.DeviceSerial, &o.DevicePasscode, &o.Problem,
		&o.Checklist, &o.Status, &o.TotalPrice, &o.CostPrice, &o.ServicePrice,
		&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de serviço: %w", err)
	}
	return &o, nil
}

// List implementa serviceorder.Repository.List
func (r *ServiceOrderRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*serviceorder.ServiceOrder, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+serviceOrderColumns+` FROM service_orders
		WHERE company_id = $1
		ORDER BY os_number DESC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de serviço: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(rows)
}

// FindByStatus implementa serviceorder.Repository.FindByStatus
func (r *ServiceOrderRepository) FindByStatus(ctx context.Context, companyID string, status serviceorder.Status, limit, offset int) ([]*serviceorder.ServiceOrder, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+serviceOrderColumns+` FROM service_orders
		WHERE company_id = $1 AND status = $2
		ORDER BY os_number DESC
		LIMIT $3 OFFSET $4`,
		companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ordens de serviço: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(rows)
}

// Update implementa serviceorder.Repository.Update
func (r *ServiceOrderRepository) Update(ctx context.Context, o *serviceorder.ServiceOrder) error {
	result, err := r.db.Exec(ctx, updateServiceOrderSQL,
		o.CustomerID, o.DeviceBrand, o.DeviceModel, o.DeviceSerial,
		o.DevicePasscode, o.Problem, o.Checklist, o.Status, o.TotalPrice,
		o.CostPrice, o.ServicePrice, o.PaymentMethod, o.UpdatedAt,
		o.ID, o.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar ordem de serviço: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrServiceOrderNotFound
	}
	return nil
}

const updateServiceOrderSQL = `UPDATE service_orders SET
	customer_id = $1, device_brand = $2, device_model = $3, device_serial = $4,
	device_passcode = $5, problem = $6, checklist = $7, status = $8,
	total_price = $9, cost_price = $10, service_price = $11,
	payment_method = $12, updated_at = $13
WHERE id = $14 AND company_id = $15`

// Finalize implementa serviceorder.Repository.Finalize. A O.S. finalizada
// e a venda vinculada entram na mesma transação, reaproveitando a baixa
// condicional de estoque da venda comum.
func (r *ServiceOrderRepository) Finalize(ctx context.Context, o *serviceorder.ServiceOrder, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, updateServiceOrderSQL,
		o.CustomerID, o.DeviceBrand, o.DeviceModel, o.DeviceSerial,
		o.DevicePasscode, o.Problem, o.Checklist, o.Status, o.TotalPrice,
		o.CostPrice, o.ServicePrice, o.PaymentMethod, o.UpdatedAt,
		o.ID, o.CompanyID)
	if err != nil {
		return fmt.Errorf("erro ao finalizar ordem de serviço: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrServiceOrderNotFound
	}

	if err := insertSaleTx(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar finalização: %w", err)
	}
	return nil
}

// CountByCustomer implementa serviceorder.Repository.CountByCustomer
func (r *ServiceOrderRepository) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM service_orders WHERE customer_id = $1",
		customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar ordens do cliente: %w", err)
	}
	return count, nil
}

// CountByCompany implementa serviceorder.Repository.CountByCompany
func (r *ServiceOrderRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM service_orders WHERE company_id = $1",
		companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar ordens de serviço: %w", err)
	}
	return count, nil
}

// scanOrderRows processa resultados de consultas que retornam múltiplas O.S.
func (r *ServiceOrderRepository) scanOrderRows(rows pgx.Rows) ([]*serviceorder.ServiceOrder, error) {
	orders := make([]*serviceorder.ServiceOrder, 0)
	for rows.Next() {
		var o serviceorder.ServiceOrder
		err := rows.Scan(
			&o.ID, &o.OSNumber, &o.CompanyID, &o.CustomerID, &o.DeviceBrand,
			&o.DeviceModel, &o.DeviceSerial, &o.DevicePasscode, &o.Problem,
			&o.Checklist, &o.Status, &o.TotalPrice, &o.CostPrice, &o.ServicePrice,
			&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler ordem de serviço: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}
	return orders, nil
}
