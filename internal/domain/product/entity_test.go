package product

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestProduct(t *testing.T, stock int, cost, sale float64) *Product {
	t.Helper()
	p, err := NewProduct("empresa-1", "Pelicula 3D", "acessorio", stock,
		decimal.NewFromFloat(cost), decimal.NewFromFloat(sale), 5, nil)
	if err != nil {
		t.Fatalf("erro ao criar produto: %v", err)
	}
	return p
}

func TestApplyBatchMediaPonderada(t *testing.T) {
	// 10 unidades a 10.00 + lote de 10 a 20.00 => custo médio 15.00
	p := newTestProduct(t, 10, 10.00, 25.00)

	b, err := p.ApplyBatch(10, decimal.NewFromFloat(20.00), decimal.NewFromFloat(30.00))
	if err != nil {
		t.Fatalf("erro ao aplicar lote: %v", err)
	}

	if p.Stock != 20 {
		t.Errorf("estoque = %d, esperado 20", p.Stock)
	}
	if !p.CostPrice.Equal(decimal.NewFromFloat(15.00)) {
		t.Errorf("custo médio = %s, esperado 15.00", p.CostPrice)
	}
	if !p.SalePrice.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("preço de venda = %s, esperado 30.00", p.SalePrice)
	}
	if b.Quantity != 10 || !b.CostPrice.Equal(decimal.NewFromFloat(20.00)) {
		t.Errorf("lote gravado incorreto: %+v", b)
	}
}

func TestApplyBatchEstoqueZerado(t *testing.T) {
	// Com estoque zero o custo do lote vira o custo do produto
	p := newTestProduct(t, 0, 10.00, 25.00)

	if _, err := p.ApplyBatch(4, decimal.NewFromFloat(12.50), decimal.NewFromFloat(25.00)); err != nil {
		t.Fatalf("erro ao aplicar lote: %v", err)
	}
	if !p.CostPrice.Equal(decimal.NewFromFloat(12.50)) {
		t.Errorf("custo = %s, esperado 12.50", p.CostPrice)
	}
}

func TestApplyBatchEstoqueNegativo(t *testing.T) {
	// Estoque negativo (oversell concorrente) não entra na média
	p := newTestProduct(t, 0, 10.00, 25.00)
	p.Stock = -2

	if _, err := p.ApplyBatch(10, decimal.NewFromFloat(8.00), decimal.NewFromFloat(20.00)); err != nil {
		t.Fatalf("erro ao aplicar lote: %v", err)
	}
	if !p.CostPrice.Equal(decimal.NewFromFloat(8.00)) {
		t.Errorf("custo = %s, esperado 8.00", p.CostPrice)
	}
	if p.Stock != 8 {
		t.Errorf("estoque = %d, esperado 8", p.Stock)
	}
}

func TestApplyBatchQuantidadeInvalida(t *testing.T) {
	p := newTestProduct(t, 10, 10.00, 25.00)

	if _, err := p.ApplyBatch(0, decimal.NewFromFloat(10.00), decimal.NewFromFloat(25.00)); err != ErrInvalidQuantity {
		t.Errorf("esperado ErrInvalidQuantity, obtido %v", err)
	}
	if _, err := p.ApplyBatch(-3, decimal.NewFromFloat(10.00), decimal.NewFromFloat(25.00)); err != ErrInvalidQuantity {
		t.Errorf("esperado ErrInvalidQuantity, obtido %v", err)
	}
}

func TestNeedsRestock(t *testing.T) {
	p := newTestProduct(t, 5, 10.00, 25.00)
	if !p.NeedsRestock() {
		t.Error("estoque igual ao mínimo deveria alertar reposição")
	}
	p.Stock = 6
	if p.NeedsRestock() {
		t.Error("estoque acima do mínimo não deveria alertar")
	}
}

func TestStockValuation(t *testing.T) {
	p := newTestProduct(t, 4, 10.00, 25.00)

	if !p.StockValue().Equal(decimal.NewFromFloat(40.00)) {
		t.Errorf("valor de estoque = %s, esperado 40.00", p.StockValue())
	}
	if !p.StockProfitEstimate().Equal(decimal.NewFromFloat(60.00)) {
		t.Errorf("lucro estimado = %s, esperado 60.00", p.StockProfitEstimate())
	}

	p.Stock = -1
	if !p.StockValue().IsZero() || !p.StockProfitEstimate().IsZero() {
		t.Error("estoque negativo deve valorar em zero")
	}
}
