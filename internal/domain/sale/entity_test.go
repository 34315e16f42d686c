package sale

import (
	"testing"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestNewSaleCalculaTaxaELiquido(t *testing.T) {
	items := []ItemInput{
		{ProductID: strPtr("prod-1"), Quantity: 2, UnitPrice: decimal.NewFromFloat(50.00), Description: "Pelicula"},
	}

	s, err := NewSale("empresa-1", items, "CREDITO", decimal.NewFromFloat(100.00), payment.DefaultRates(), nil)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}

	if s.PaymentMethod != payment.StoredCartao {
		t.Errorf("forma gravada = %s, esperado CARTAO", s.PaymentMethod)
	}
	if s.CardType != payment.CardCredito {
		t.Errorf("subtipo = %s, esperado CREDITO", s.CardType)
	}
	if !s.FeeAmount.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("taxa = %s, esperado 3.99", s.FeeAmount)
	}
	if !s.NetAmount.Add(s.FeeAmount).Equal(s.Total) {
		t.Errorf("liquido %s + taxa %s != total %s", s.NetAmount, s.FeeAmount, s.Total)
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %s, esperado COMPLETED", s.Status)
	}
	if len(s.Items) != 1 || s.Items[0].SaleID != s.ID {
		t.Errorf("itens não vinculados à venda: %+v", s.Items)
	}
}

func TestNewSaleValidacoes(t *testing.T) {
	if _, err := NewSale("empresa-1", nil, "PIX", decimal.NewFromFloat(10.00), payment.DefaultRates(), nil); err != ErrNoItems {
		t.Errorf("esperado ErrNoItems, obtido %v", err)
	}

	items := []ItemInput{{Quantity: 1, UnitPrice: decimal.Zero, Description: "servico"}}
	if _, err := NewSale("empresa-1", items, "PIX", decimal.Zero, payment.DefaultRates(), nil); err != ErrInvalidTotal {
		t.Errorf("esperado ErrInvalidTotal, obtido %v", err)
	}
}

func TestRefundDuasVezesRejeitado(t *testing.T) {
	items := []ItemInput{{ProductID: strPtr("prod-1"), Quantity: 1, UnitPrice: decimal.NewFromFloat(30.00)}}
	s, err := NewSale("empresa-1", items, "DINHEIRO", decimal.NewFromFloat(30.00), payment.DefaultRates(), nil)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}

	if err := s.Refund("cliente desistiu"); err != nil {
		t.Fatalf("estorno falhou: %v", err)
	}
	if s.Status != StatusRefunded || s.ReturnReason != "cliente desistiu" {
		t.Errorf("estorno não aplicado: %+v", s)
	}

	if err := s.Refund("de novo"); err != ErrAlreadyRefunded {
		t.Errorf("esperado ErrAlreadyRefunded, obtido %v", err)
	}
}

func TestNormalizedMethod(t *testing.T) {
	rates := payment.DefaultRates()
	mk := func(method string) *Sale {
		items := []ItemInput{{Quantity: 1, UnitPrice: decimal.NewFromFloat(10.00), Description: "x"}}
		s, err := NewSale("empresa-1", items, method, decimal.NewFromFloat(10.00), rates, nil)
		if err != nil {
			t.Fatalf("erro ao criar venda: %v", err)
		}
		return s
	}

	if got := mk("DEBITO").NormalizedMethod(); got != payment.MethodDebito {
		t.Errorf("DEBITO normalizado = %s", got)
	}
	if got := mk("CREDITO").NormalizedMethod(); got != payment.MethodCredito {
		t.Errorf("CREDITO normalizado = %s", got)
	}
	if got := mk("PIX").NormalizedMethod(); got != payment.MethodPix {
		t.Errorf("PIX normalizado = %s", got)
	}
	if got := mk("DINHEIRO").NormalizedMethod(); got != payment.MethodDinheiro {
		t.Errorf("DINHEIRO normalizado = %s", got)
	}
}
