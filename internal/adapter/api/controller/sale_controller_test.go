package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brunovales/erp-assistencia/internal/adapter/repository"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
)

type fakeSaleRepo struct {
	createErr  error
	reverseErr error
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *saledomain.Sale) error { return f.createErr }

func (f *fakeSaleRepo) FindByID(ctx context.Context, id string) (*saledomain.Sale, error) {
	return nil, repository.ErrSaleNotFound
}

func (f *fakeSaleRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*saledomain.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) FindByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*saledomain.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) FindCompletedByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*saledomain.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) Reverse(ctx context.Context, id string, mode saledomain.ReverseMode, reason string) error {
	return f.reverseErr
}

func (f *fakeSaleRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	return 0, nil
}

type fakeCompanyRepo struct {
	company *companydomain.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *companydomain.Company) error { return nil }

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id string) (*companydomain.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) GetOrCreateDefault(ctx context.Context, id, name string) (*companydomain.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c *companydomain.Company) error { return nil }

func newSaleTestRouter(t *testing.T, saleRepo saledomain.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	comp, err := companydomain.NewCompany("Loja Teste", "", "")
	if err != nil {
		t.Fatalf("erro ao criar empresa de teste: %v", err)
	}

	ctrl := NewSaleController(saleRepo, &fakeCompanyRepo{company: comp}, logger.NewLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("company_id", comp.ID) })
	r.POST("/sales", ctrl.Create)
	r.POST("/sales/:id/refund", ctrl.Refund)
	r.DELETE("/sales/:id", ctrl.Delete)
	return r
}

func TestCreateEstoqueInsuficienteRetorna400(t *testing.T) {
	r := newSaleTestRouter(t, &fakeSaleRepo{createErr: repository.ErrInsufficientStock})

	body := `{"payment_method":"PIX","items":[{"product_id":"produto-1","quantity":2,"unit_price":"10.00","description":"cabo"}]}`
	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para estoque insuficiente", w.Code)
	}
}

func TestRefundDeVendaJaEstornadaRetorna400(t *testing.T) {
	r := newSaleTestRouter(t, &fakeSaleRepo{reverseErr: repository.ErrSaleAlreadyReversed})

	req := httptest.NewRequest(http.MethodPost, "/sales/venda-1/refund", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para estorno repetido", w.Code)
	}
}

func TestDeleteDeVendaInexistenteRetorna404(t *testing.T) {
	r := newSaleTestRouter(t, &fakeSaleRepo{reverseErr: repository.ErrSaleNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/sales/venda-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", w.Code)
	}
}
