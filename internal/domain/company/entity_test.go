package company

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewCompanyDefaults(t *testing.T) {
	c, err := NewCompany("Assistência do Bruno", "12345678000199", "11999990000")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !c.DebitRate.Equal(decimal.NewFromFloat(1.99)) {
		t.Errorf("taxa de débito = %s, esperado 1.99", c.DebitRate)
	}
	if !c.CreditRate.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("taxa de crédito = %s, esperado 3.99", c.CreditRate)
	}
	if !c.TaxCash.IsZero() || !c.TaxPix.IsZero() {
		t.Error("dinheiro e PIX não têm taxa por padrão")
	}
}

func TestNewCompanyEmptyName(t *testing.T) {
	if _, err := NewCompany("", "", ""); err != ErrEmptyName {
		t.Errorf("erro = %v, esperado ErrEmptyName", err)
	}
}

func TestRatesFallback(t *testing.T) {
	c, _ := NewCompany("Loja", "", "")

	// Taxas zeradas de cartão caem nos padrões
	c.UpdateRates(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	rates := c.Rates()
	if !rates.DebitRate.Equal(decimal.NewFromFloat(1.99)) {
		t.Errorf("taxa de débito = %s, esperado fallback 1.99", rates.DebitRate)
	}
	if !rates.CreditRate.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("taxa de crédito = %s, esperado fallback 3.99", rates.CreditRate)
	}

	// Taxas configuradas são respeitadas
	c.UpdateRates(decimal.NewFromFloat(1.50), decimal.NewFromFloat(4.50), decimal.Zero, decimal.Zero)
	rates = c.Rates()
	if !rates.DebitRate.Equal(decimal.NewFromFloat(1.50)) {
		t.Errorf("taxa de débito = %s, esperado 1.50", rates.DebitRate)
	}
	if !rates.CreditRate.Equal(decimal.NewFromFloat(4.50)) {
		t.Errorf("taxa de crédito = %s, esperado 4.50", rates.CreditRate)
	}
}
