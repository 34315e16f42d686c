package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	closingdomain "github.com/brunovales/erp-assistencia/internal/domain/closing"
	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	saledomain "github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
)

// recordingSaleRepo registra a janela consultada por FindByPeriod
type recordingSaleRepo struct {
	fakeSaleRepo
	from time.Time
	to   time.Time
}

func (r *recordingSaleRepo) FindByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]*saledomain.Sale, error) {
	r.from = from
	r.to = to
	return nil, nil
}

type fakeClosingRepo struct {
	saved *closingdomain.DailyClosing
}

func (f *fakeClosingRepo) Upsert(ctx context.Context, c *closingdomain.DailyClosing) error {
	f.saved = c
	return nil
}

func (f *fakeClosingRepo) FindByDate(ctx context.Context, companyID string, date time.Time) (*closingdomain.DailyClosing, error) {
	return f.saved, nil
}

func (f *fakeClosingRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*closingdomain.DailyClosing, error) {
	return nil, nil
}

func TestCloseComDataExplicitaFechaODiaPedido(t *testing.T) {
	gin.SetMode(gin.TestMode)

	comp, err := companydomain.NewCompany("Loja Teste", "", "")
	if err != nil {
		t.Fatalf("erro ao criar empresa de teste: %v", err)
	}

	saleRepo := &recordingSaleRepo{}
	closingRepo := &fakeClosingRepo{}
	ctrl := NewCashFlowController(saleRepo, closingRepo, &fakeCompanyRepo{company: comp}, logger.NewLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("company_id", comp.ID) })
	r.POST("/cash-register/close", ctrl.Close)

	req := httptest.NewRequest(http.MethodPost, "/cash-register/close?date=2026-08-29", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}

	if saleRepo.from.Day() != 29 || saleRepo.to.Day() != 29 {
		t.Errorf("janela consultada [%s, %s], esperado o dia 29", saleRepo.from, saleRepo.to)
	}
	if closingRepo.saved == nil {
		t.Fatal("fechamento não foi gravado")
	}
	if closingRepo.saved.ClosingDate.Day() != 29 {
		t.Errorf("fechamento gravado para o dia %d, esperado 29", closingRepo.saved.ClosingDate.Day())
	}
}

func TestCloseComDataInvalidaRetorna400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	comp, err := companydomain.NewCompany("Loja Teste", "", "")
	if err != nil {
		t.Fatalf("erro ao criar empresa de teste: %v", err)
	}

	ctrl := NewCashFlowController(&recordingSaleRepo{}, &fakeClosingRepo{}, &fakeCompanyRepo{company: comp}, logger.NewLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("company_id", comp.ID) })
	r.POST("/cash-register/close", ctrl.Close)

	req := httptest.NewRequest(http.MethodPost, "/cash-register/close?date=29-08-2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", w.Code)
	}
}
