package report

import (
	"testing"
	"time"

	"github.com/brunovales/erp-assistencia/internal/domain/payment"
	"github.com/brunovales/erp-assistencia/internal/domain/product"
	"github.com/brunovales/erp-assistencia/internal/domain/sale"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func mkProduct(t *testing.T, name string, cost, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct("empresa-1", name, "peca", 10,
		decimal.NewFromFloat(cost), decimal.NewFromFloat(price), 2, nil)
	if err != nil {
		t.Fatalf("erro ao criar produto: %v", err)
	}
	return p
}

func mkSale(t *testing.T, method string, createdAt time.Time, items []sale.ItemInput) *sale.Sale {
	t.Helper()
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	s, err := sale.NewSale("empresa-1", items, method, total, payment.DefaultRates(), nil)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}
	s.CreatedAt = createdAt
	return s
}

func TestBuildTotaisEMargem(t *testing.T) {
	pelicula := mkProduct(t, "Pelicula 3D", 5.00, 20.00)
	capa := mkProduct(t, "Capa silicone", 8.00, 30.00)
	products := map[string]*product.Product{pelicula.ID: pelicula, capa.ID: capa}

	dia1 := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	dia2 := time.Date(2024, 5, 11, 14, 0, 0, 0, time.UTC)

	sales := []*sale.Sale{
		mkSale(t, "PIX", dia1, []sale.ItemInput{
			{ProductID: strPtr(pelicula.ID), Quantity: 2, UnitPrice: decimal.NewFromFloat(20.00)},
		}),
		mkSale(t, "CREDITO", dia2, []sale.ItemInput{
			{ProductID: strPtr(capa.ID), Quantity: 1, UnitPrice: decimal.NewFromFloat(30.00)},
		}),
	}

	r := Build(sales, products)

	if !r.TotalRevenue.Equal(decimal.NewFromFloat(70.00)) {
		t.Errorf("receita = %s, esperado 70.00", r.TotalRevenue)
	}
	// custo: 2*5.00 + 1*8.00 = 18.00
	if !r.TotalCost.Equal(decimal.NewFromFloat(18.00)) {
		t.Errorf("custo = %s, esperado 18.00", r.TotalCost)
	}
	if !r.TotalProfit.Equal(decimal.NewFromFloat(52.00)) {
		t.Errorf("lucro = %s, esperado 52.00", r.TotalProfit)
	}
	// margem: 52/70*100 = 74.29
	if !r.Margin.Equal(decimal.NewFromFloat(74.29)) {
		t.Errorf("margem = %s, esperado 74.29", r.Margin)
	}
	if r.SaleCount != 2 {
		t.Errorf("contagem = %d, esperado 2", r.SaleCount)
	}
}

func TestBuildMargemZeraSemReceita(t *testing.T) {
	r := Build(nil, nil)
	if !r.Margin.IsZero() {
		t.Errorf("margem sem vendas = %s, esperado 0", r.Margin)
	}
	if r.BestDay != nil || r.WorstDay != nil {
		t.Error("melhor/pior dia deveriam ser nulos sem vendas")
	}
}

func TestBuildTopProdutosPorLucro(t *testing.T) {
	products := make(map[string]*product.Product)
	var items []sale.ItemInput

	// 7 produtos com lucros crescentes; só os 5 mais lucrativos entram
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, name := range names {
		p := mkProduct(t, name, 0, float64(10*(i+1)))
		products[p.ID] = p
		items = append(items, sale.ItemInput{
			ProductID: strPtr(p.ID), Quantity: 1, UnitPrice: decimal.NewFromFloat(float64(10 * (i + 1))),
		})
	}

	r := Build([]*sale.Sale{mkSale(t, "DINHEIRO", time.Now(), items)}, products)

	if len(r.TopProducts) != 5 {
		t.Fatalf("top produtos = %d, esperado 5", len(r.TopProducts))
	}
	if r.TopProducts[0].Name != "g" {
		t.Errorf("mais lucrativo = %s, esperado g", r.TopProducts[0].Name)
	}
	for i := 1; i < len(r.TopProducts); i++ {
		if r.TopProducts[i].Profit.GreaterThan(r.TopProducts[i-1].Profit) {
			t.Errorf("top produtos fora de ordem na posição %d", i)
		}
	}
}

func TestBuildLinhaDeServicoSemProduto(t *testing.T) {
	// linha de O.S. sem produto: receita conta, custo zero
	items := []sale.ItemInput{
		{Quantity: 1, UnitPrice: decimal.NewFromFloat(150.00), Description: "Troca de tela"},
	}
	r := Build([]*sale.Sale{mkSale(t, "PIX", time.Now(), items)}, nil)

	if !r.TotalRevenue.Equal(decimal.NewFromFloat(150.00)) {
		t.Errorf("receita = %s, esperado 150.00", r.TotalRevenue)
	}
	if !r.TotalCost.IsZero() {
		t.Errorf("custo = %s, esperado 0", r.TotalCost)
	}
	if len(r.TopProducts) != 1 || r.TopProducts[0].Name != "Troca de tela" {
		t.Errorf("linha de serviço deveria agrupar pela descrição: %+v", r.TopProducts)
	}
}

func TestBuildRankingDePagamentos(t *testing.T) {
	items := func(v float64) []sale.ItemInput {
		return []sale.ItemInput{{Quantity: 1, UnitPrice: decimal.NewFromFloat(v), Description: "x"}}
	}
	sales := []*sale.Sale{
		mkSale(t, "PIX", time.Now(), items(300.00)),
		mkSale(t, "DINHEIRO", time.Now(), items(100.00)),
		mkSale(t, "CREDITO", time.Now(), items(200.00)),
	}

	r := Build(sales, nil)

	if len(r.PaymentRanking) != 3 {
		t.Fatalf("ranking = %d formas, esperado 3 (sem movimento fica fora)", len(r.PaymentRanking))
	}
	want := []payment.Method{payment.MethodPix, payment.MethodCredito, payment.MethodDinheiro}
	for i, m := range want {
		if r.PaymentRanking[i].Method != m {
			t.Errorf("ranking[%d] = %s, esperado %s", i, r.PaymentRanking[i].Method, m)
		}
	}
}

func TestBuildMelhorEPiorDia(t *testing.T) {
	items := func(v float64) []sale.ItemInput {
		return []sale.ItemInput{{Quantity: 1, UnitPrice: decimal.NewFromFloat(v), Description: "x"}}
	}
	sales := []*sale.Sale{
		mkSale(t, "PIX", time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC), items(500.00)),
		mkSale(t, "PIX", time.Date(2024, 5, 11, 14, 0, 0, 0, time.UTC), items(50.00)),
		mkSale(t, "PIX", time.Date(2024, 5, 12, 14, 0, 0, 0, time.UTC), items(200.00)),
	}

	r := Build(sales, nil)

	if r.BestDay == nil || r.BestDay.Date != "2024-05-10" {
		t.Errorf("melhor dia = %+v, esperado 2024-05-10", r.BestDay)
	}
	if r.WorstDay == nil || r.WorstDay.Date != "2024-05-11" {
		t.Errorf("pior dia = %+v, esperado 2024-05-11", r.WorstDay)
	}
	if len(r.DailyTotals) != 3 {
		t.Errorf("baldes diários = %d, esperado 3", len(r.DailyTotals))
	}
}

func TestDayKeyDeslocaFuso(t *testing.T) {
	// 01:00 UTC ainda é o dia anterior em São Paulo (-3h)
	items := []sale.ItemInput{{Quantity: 1, UnitPrice: decimal.NewFromFloat(10.00), Description: "x"}}
	s := mkSale(t, "PIX", time.Date(2024, 5, 11, 1, 0, 0, 0, time.UTC), items)

	r := Build([]*sale.Sale{s}, nil)
	if len(r.DailyTotals) != 1 || r.DailyTotals[0].Date != "2024-05-10" {
		t.Errorf("balde diário = %+v, esperado 2024-05-10", r.DailyTotals)
	}
}

func TestStockSnapshot(t *testing.T) {
	a := mkProduct(t, "a", 10.00, 25.00) // estoque 10
	b := mkProduct(t, "b", 5.00, 8.00)   // estoque 10
	b.Stock = 1                          // abaixo do mínimo (2)

	s := StockSnapshot([]*product.Product{a, b})

	// 10*10 + 1*5 = 105
	if !s.StockValue.Equal(decimal.NewFromFloat(105.00)) {
		t.Errorf("valor de estoque = %s, esperado 105.00", s.StockValue)
	}
	// 10*15 + 1*3 = 153
	if !s.StockProfitEstimate.Equal(decimal.NewFromFloat(153.00)) {
		t.Errorf("lucro estimado = %s, esperado 153.00", s.StockProfitEstimate)
	}
	if s.TotalStockItems != 11 {
		t.Errorf("itens em estoque = %d, esperado 11", s.TotalStockItems)
	}
	if s.BelowMinimum != 1 {
		t.Errorf("produtos no alerta = %d, esperado 1", s.BelowMinimum)
	}
}

func TestWindowsSemanaComecaNoDomingo(t *testing.T) {
	// 2024-05-15 é uma quarta-feira; domingo da semana é 2024-05-12
	now := time.Date(2024, 5, 15, 18, 0, 0, 0, time.UTC)
	today, week, month := Windows(now)

	if today.Day() != 15 {
		t.Errorf("início de hoje = %s", today)
	}
	if week.Weekday() != time.Sunday || week.Day() != 12 {
		t.Errorf("início da semana = %s, esperado domingo dia 12", week)
	}
	if month.Day() != 1 || month.Month() != time.May {
		t.Errorf("início do mês = %s", month)
	}
}
