package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	companydomain "github.com/brunovales/erp-assistencia/internal/domain/company"
	"github.com/brunovales/erp-assistencia/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestUpdateRatesAlteraSomenteAsTaxas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	comp, err := companydomain.NewCompany("Loja Teste", "12345678000199", "11999990000")
	if err != nil {
		t.Fatalf("erro ao criar empresa de teste: %v", err)
	}

	ctrl := NewConfigController(&fakeCompanyRepo{company: comp}, logger.NewLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("company_id", comp.ID) })
	r.PUT("/config/rates", ctrl.UpdateRates)

	body := `{"debit_rate":"1.50","credit_rate":"4.50"}`
	req := httptest.NewRequest(http.MethodPut, "/config/rates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if !comp.DebitRate.Equal(decimal.NewFromFloat(1.50)) {
		t.Errorf("taxa de débito = %s, esperado 1.50", comp.DebitRate)
	}
	if !comp.CreditRate.Equal(decimal.NewFromFloat(4.50)) {
		t.Errorf("taxa de crédito = %s, esperado 4.50", comp.CreditRate)
	}
	if comp.Name != "Loja Teste" {
		t.Errorf("nome da empresa alterado para %q", comp.Name)
	}
	if comp.Document != "12345678000199" {
		t.Errorf("documento da empresa alterado para %q", comp.Document)
	}
}

func TestUpdateRatesTaxasAusentesMantemValorAtual(t *testing.T) {
	gin.SetMode(gin.TestMode)

	comp, err := companydomain.NewCompany("Loja Teste", "", "")
	if err != nil {
		t.Fatalf("erro ao criar empresa de teste: %v", err)
	}
	comp.UpdateRates(decimal.NewFromFloat(1.20), decimal.NewFromFloat(3.40), decimal.Zero, decimal.Zero)

	ctrl := NewConfigController(&fakeCompanyRepo{company: comp}, logger.NewLogger())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("company_id", comp.ID) })
	r.PUT("/config/rates", ctrl.UpdateRates)

	req := httptest.NewRequest(http.MethodPut, "/config/rates", strings.NewReader(`{"tax_pix":"0.99"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if !comp.DebitRate.Equal(decimal.NewFromFloat(1.20)) {
		t.Errorf("taxa de débito = %s, esperado 1.20 (inalterada)", comp.DebitRate)
	}
	if !comp.TaxPix.Equal(decimal.NewFromFloat(0.99)) {
		t.Errorf("taxa de pix = %s, esperado 0.99", comp.TaxPix)
	}
}
